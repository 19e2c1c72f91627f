/*
 * Decode command - reads a list response and prints its results.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"backupradar/internal/backupradar/model"
	"backupradar/internal/metrics"

	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errDecodeFailed = errors.New("response could not be decoded")

func newDecodeCommand(a *app) *cobra.Command {
	var asJSON, dumpMetrics bool
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a list response read from a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dumpMetrics {
				defer func() {
					if err := writeMetrics(cmd.ErrOrStderr()); err != nil {
						log.Warnf("Cannot write metrics: %v", err)
					}
				}()
			}
			data, err := readInput(a.stdin, args)
			if err != nil {
				return err
			}
			page, err := model.ParseResponsePage(data)
			if err != nil {
				for _, de := range model.DecodeErrors(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), de.Error())
				}
				return errDecodeFailed
			}
			log.Debugf("Decoded page %d of %d with %d results", page.Page, page.TotalPages, len(page.Results))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(page)
			}
			return writeSummary(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decoded page as JSON")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "write decoding metrics to standard error")
	return cmd
}

// readInput reads the named file, or stdin when no file is given.
func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read response: %w", err)
	}
	return data, nil
}

// writeSummary prints one line per result.
func writeSummary(w io.Writer, page model.ResponsePage) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BACKUP ID\tCOMPANY\tDEVICE\tJOB\tSTATUS\tHISTORY")
	for _, r := range page.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n",
			r.BackupID, r.CompanyName, r.DeviceName, r.JobName, r.Status.Name, len(r.History))
	}
	fmt.Fprintf(tw, "page %d/%d, %d total\n", page.Page, page.TotalPages, page.Total)
	return tw.Flush()
}

// writeMetrics writes the decoding metrics in text exposition format.
func writeMetrics(w io.Writer) error {
	families, err := metrics.GetOpenMetricsInstance().GetRegistry().Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
