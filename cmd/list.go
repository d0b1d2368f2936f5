// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/penny-vault/ginzu/scenario"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store := &scenario.Store{DBUrl: viper.GetString("DBUrl")}
		if err := store.Connect(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer store.Close()

		scenarios, err := store.List(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not list scenarios")
		}

		r, _ := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)

		out, err := r.Render(scenario.ListMarkdown(scenarios))
		if err != nil {
			log.Fatal().Err(err).Msg("could not render scenario list")
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
