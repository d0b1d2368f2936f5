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
	"os"
	"path"
	"strings"
)

// Filer writes a named blob of bytes somewhere and returns where it landed.
type Filer interface {
	CreateFile(name string, data []byte) (string, error)
}

// FSFiler writes files under a base directory on the local filesystem.
type FSFiler struct {
	BasePath string
}

func (fs *FSFiler) CreateFile(name string, data []byte) (string, error) {
	filePath := path.Join(fs.BasePath, name)
	err := os.WriteFile(filePath, data, 0644)
	return filePath, err
}

// NewFilerFromString builds a Filer from a spec string such as "file:///tmp".
func NewFilerFromString(spec string) Filer {
	switch {
	case strings.HasPrefix(spec, "file://"):
		return &FSFiler{BasePath: strings.TrimPrefix(spec, "file://")}
	}
	return nil
}
