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
	"testing"
)

func TestFSFiler_CreateFile(t *testing.T) {
	dir := t.TempDir()
	filer := &FSFiler{BasePath: dir}

	written, err := filer.CreateFile("scenario.json", []byte(`{"ok":true}`))
	if err != nil {
		t.Fatalf("CreateFile returned error: %v", err)
	}

	want := path.Join(dir, "scenario.json")
	if written != want {
		t.Errorf("CreateFile path = %q, want %q", written, want)
	}

	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("could not read back written file: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("file contents = %q, want %q", data, `{"ok":true}`)
	}
}

func TestNewFilerFromString_FileScheme(t *testing.T) {
	filer := NewFilerFromString("file:///tmp/scenarios")

	fsFiler, ok := filer.(*FSFiler)
	if !ok {
		t.Fatalf("NewFilerFromString returned %T, want *FSFiler", filer)
	}
	if fsFiler.BasePath != "/tmp/scenarios" {
		t.Errorf("BasePath = %q, want %q", fsFiler.BasePath, "/tmp/scenarios")
	}
}

func TestNewFilerFromString_UnknownScheme(t *testing.T) {
	if filer := NewFilerFromString("s3://bucket/key"); filer != nil {
		t.Errorf("NewFilerFromString with unknown scheme = %v, want nil", filer)
	}
}
