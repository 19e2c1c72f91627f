/*
 * Query command - prints the configured list query.
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
	"fmt"

	"github.com/spf13/cobra"
)

func newQueryCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the list query built from the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := a.config.QueryParams()
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(q.Encode())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), q.Values().Encode())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the query as a JSON object")
	return cmd
}
