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
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kothar/go-backblaze"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// exportDoc is the shape written to the export file: enough to replay or
// audit a scenario without a database.
type exportDoc struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	CreatedOn string      `json:"created_on"`
	CreatedBy string      `json:"created_by"`
	Inputs    interface{} `json:"inputs"`
	Outputs   interface{} `json:"outputs"`
}

// WriteJSON renders the scenario as indented JSON into a local file using
// filer, returning the path written.
func (s *Scenario) WriteJSON(filer Filer) (string, error) {
	doc := exportDoc{
		ID:        s.ID.String(),
		Name:      s.Name,
		CreatedOn: s.CreatedOn.Format("2006-01-02T15:04:05Z07:00"),
		CreatedBy: s.CreatedBy,
		Inputs:    s.Inputs,
		Outputs:   s.Outputs,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	return filer.CreateFile(fmt.Sprintf("%s.json", s.Slug), data)
}

// UploadToBackblaze writes the scenario to a local staging file and uploads
// it to the named B2 bucket under dirname. The staging location defaults to
// the OS temp directory, or can be pinned to a fixed directory via the
// export.stagingDir config key (a "file://" spec understood by
// NewFilerFromString).
func (s *Scenario) UploadToBackblaze(bucketName, dirname string) error {
	tmpFiler := NewFilerFromString(viper.GetString("export.stagingDir"))
	if tmpFiler == nil {
		tmpFiler = &FSFiler{BasePath: os.TempDir()}
	}

	fn, err := s.WriteJSON(tmpFiler)
	if err != nil {
		return err
	}
	defer os.Remove(fn)

	b2, err := backblaze.NewB2(backblaze.Credentials{
		KeyID:          viper.GetString("backblaze.application_id"),
		ApplicationKey: viper.GetString("backblaze.application_key"),
	})
	if err != nil {
		log.Error().Err(err).Str("BucketName", bucketName).Msg("authorize backblaze failed")
		return err
	}

	bucket, err := b2.Bucket(bucketName)
	if err != nil {
		log.Error().Err(err).Str("BucketName", bucketName).Msg("lookup bucket failed")
		return err
	}
	if bucket == nil {
		log.Error().Str("BucketName", bucketName).Msg("bucket does not exist")
		return errors.New("bucket not found")
	}

	reader, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer reader.Close()

	outName := fmt.Sprintf("%s/%s.json", dirname, s.Slug)
	file, err := bucket.UploadFile(outName, map[string]string{}, reader)
	if err != nil {
		log.Error().Err(err).Str("FileName", outName).Str("BucketName", bucketName).Msg("save file to backblaze failed")
		return err
	}

	log.Info().Str("FileName", file.Name).Int64("Size", file.ContentLength).Str("ID", file.ID).Msg("uploaded scenario to backblaze")
	return nil
}
