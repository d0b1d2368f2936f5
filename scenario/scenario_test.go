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
	"errors"
	"testing"

	"github.com/penny-vault/ginzu/ginzu"
)

func baseInputs() ginzu.GinzuInputs {
	return ginzu.GinzuInputs{
		RevenuesBase:           1000,
		EBITReportedBase:       150,
		BookEquity:             400,
		BookDebt:               200,
		Cash:                   100,
		SharesOutstanding:      100,
		RevGrowthY1:            0.15,
		RevCAGRY2To5:           0.10,
		MarginY1:               0.15,
		MarginTarget:           0.20,
		MarginConvergenceYear:  5,
		SalesToCapital1To5:     1.5,
		SalesToCapital6To10:    1.5,
		RiskfreeRateNow:        0.04,
		WACCInitial:            0.09,
		TaxRateEffective:       0.25,
		TaxRateMarginal:        0.25,
		MatureMarketERP:        0.05,
	}
}

func TestNew_ValidInputs(t *testing.T) {
	s, err := New("AMZN base case", "analyst1", baseInputs())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if s.Name != "AMZN base case" {
		t.Errorf("Name = %q, want %q", s.Name, "AMZN base case")
	}
	if s.Slug != "amzn-base-case" {
		t.Errorf("Slug = %q, want %q", s.Slug, "amzn-base-case")
	}
	if s.CreatedBy != "analyst1" {
		t.Errorf("CreatedBy = %q, want %q", s.CreatedBy, "analyst1")
	}
	if s.ID.String() == "" {
		t.Error("ID was not assigned")
	}
	if s.CreatedOn.IsZero() {
		t.Error("CreatedOn was not assigned")
	}
	if s.Outputs.EstimatedValuePerShare <= 0 {
		t.Errorf("EstimatedValuePerShare = %g, want > 0", s.Outputs.EstimatedValuePerShare)
	}
}

func TestNew_InvalidInputsPropagatesEngineError(t *testing.T) {
	in := baseInputs()
	in.SharesOutstanding = 0

	_, err := New("broken", "analyst1", in)
	if err == nil {
		t.Fatal("expected an error for zero shares outstanding, got nil")
	}
	if !errors.Is(err, ginzu.ErrInvalidInput) {
		t.Errorf("error = %v, want wrapping ErrInvalidInput", err)
	}
}
