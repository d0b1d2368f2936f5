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

	"github.com/charmbracelet/huh"
	"github.com/penny-vault/ginzu/scenario"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <scenario id prefix>...",
	Short: "Delete saved scenarios",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store := &scenario.Store{DBUrl: viper.GetString("DBUrl")}
		if err := store.Connect(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer store.Close()

		for _, id := range args {
			s, err := store.FromIDPrefix(ctx, id)
			if err != nil {
				log.Fatal().Err(err).Str("ID", id).Msg("could not find scenario")
			}

			confirmed := false
			confirmForm := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Are you sure you want to delete '%s'?", s.Name)).
						Value(&confirmed),
				),
			)

			if err := confirmForm.Run(); err != nil {
				log.Fatal().Err(err).Msg("failed to create wizard")
			}

			if !confirmed {
				fmt.Printf("Ok, we won't delete '%s'\n", s.Name)
				continue
			}

			if _, err := store.DeleteIDPrefix(ctx, id); err != nil {
				log.Fatal().Err(err).Msg("could not delete scenario")
			}
			fmt.Printf("deleted '%s'\n", s.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
