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

	"github.com/penny-vault/ginzu/scenario"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	exportDir    string
	exportBucket string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <scenario id prefix>",
	Short: "Export a saved scenario to Backblaze B2",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store := &scenario.Store{DBUrl: viper.GetString("DBUrl")}
		if err := store.Connect(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer store.Close()

		s, err := store.FromIDPrefix(ctx, args[0])
		if err != nil {
			log.Fatal().Err(err).Str("ID", args[0]).Msg("could not find scenario")
		}

		bucket := exportBucket
		if bucket == "" {
			bucket = viper.GetString("backblaze.bucket")
		}

		if err := s.UploadToBackblaze(bucket, exportDir); err != nil {
			log.Fatal().Err(err).Msg("could not export scenario")
		}

		log.Info().Str("Name", s.Name).Str("Bucket", bucket).Msg("scenario exported")
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDir, "dir", "scenarios", "directory within the bucket to upload to")
	exportCmd.Flags().StringVar(&exportBucket, "bucket", "", "backblaze bucket name (default backblaze.bucket from config)")
}
