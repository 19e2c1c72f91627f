/*
 * BackupRadar payload tool.
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
	"io"
	"os"

	"backupradar/internal/backupradar"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Version = "local"
	Gitsha  = "?"
)

// app holds what the subcommands share.
type app struct {
	config *backupradar.Configuration
	stdin  io.Reader
}

// newRootCommand builds the command tree.
func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin}
	root := &cobra.Command{
		Use:           "backupradar",
		Short:         "Decode BackupRadar responses and build list queries",
		Version:       Version + " (" + Gitsha + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := backupradar.NewConfiguration()
			if err != nil {
				return err
			}
			if err := cfg.ConfigureLogging(); err != nil {
				return err
			}
			a.config = cfg
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newDecodeCommand(a), newQueryCommand(a))
	return root
}

// main function
func main() {
	log.SetOutput(os.Stderr)
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
