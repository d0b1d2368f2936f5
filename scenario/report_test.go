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
	"strings"
	"testing"
)

func TestListMarkdown_Empty(t *testing.T) {
	md := ListMarkdown(nil)
	if !strings.Contains(md, "No scenarios have been saved yet") {
		t.Errorf("ListMarkdown(nil) = %q, want a no-scenarios notice", md)
	}
}

func TestListMarkdown_WithScenarios(t *testing.T) {
	s, err := New("AMZN base case", "analyst1", baseInputs())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	md := ListMarkdown([]*Scenario{s})
	if !strings.Contains(md, "AMZN base case") {
		t.Errorf("ListMarkdown output missing scenario name: %q", md)
	}
	if !strings.Contains(md, s.ID.String()[:8]) {
		t.Errorf("ListMarkdown output missing ID prefix: %q", md)
	}
}

func TestDetailMarkdown(t *testing.T) {
	s, err := New("AMZN base case", "analyst1", baseInputs())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	md := DetailMarkdown(s)
	if !strings.Contains(md, "# AMZN base case") {
		t.Errorf("DetailMarkdown missing title heading: %q", md)
	}
	if !strings.Contains(md, "## Year-by-year") {
		t.Errorf("DetailMarkdown missing year-by-year table: %q", md)
	}
	if strings.Count(md, "\n|") < 10 {
		t.Errorf("DetailMarkdown year-by-year table has too few rows")
	}
}
