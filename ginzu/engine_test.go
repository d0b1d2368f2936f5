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
package ginzu

import (
	"errors"
	"math"
	"testing"
)

// baseInputs returns a plausible, self-consistent set of inputs modeled
// loosely on a large, profitable consumer-tech company. Tests mutate a copy
// of it rather than constructing a fresh GinzuInputs from scratch.
func baseInputs() GinzuInputs {
	return GinzuInputs{
		RevenuesBase:       1000,
		EBITReportedBase:   150,
		BookEquity:         400,
		BookDebt:           200,
		Cash:               100,
		NonOperatingAssets: 0,
		MinorityInterests:  0,
		SharesOutstanding:  100,
		StockPrice:         50,

		RevGrowthY1:  0.15,
		RevCAGRY2To5: 0.10,

		MarginY1:              0.15,
		MarginTarget:          0.20,
		MarginConvergenceYear: 5,

		SalesToCapital1To5:  1.5,
		SalesToCapital6To10: 1.5,

		RiskfreeRateNow:  0.04,
		WACCInitial:      0.09,
		TaxRateEffective: 0.25,
		TaxRateMarginal:  0.25,
		MatureMarketERP:  0.05,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompute_Baseline(t *testing.T) {
	out, err := Compute(baseInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantY1 := 1000 * 1.15
	if !almostEqual(out.Revenues.At(1), wantY1) {
		t.Errorf("revenues year 1 = %g, want %g", out.Revenues.At(1), wantY1)
	}

	if out.PerpetualGrowthRate != 0.04 {
		t.Errorf("perpetual growth = %g, want 0.04", out.PerpetualGrowthRate)
	}
	if out.StableWACC != 0.09 {
		t.Errorf("stable wacc = %g, want 0.09", out.StableWACC)
	}

	if out.ValueOfEquity <= 0 {
		t.Errorf("value of equity = %g, want positive", out.ValueOfEquity)
	}
	if out.EstimatedValuePerShare != out.ValueOfEquityCommon/100 {
		t.Errorf("per-share value inconsistent with equity value and share count")
	}
}

func TestCompute_HighGrowthStress(t *testing.T) {
	base := baseInputs()
	baseOut, err := Compute(base)
	if err != nil {
		t.Fatalf("baseline: unexpected error: %v", err)
	}

	stressed := base
	stressed.RevGrowthY1 = 0.50
	stressed.RevCAGRY2To5 = 0.40
	stressedOut, err := Compute(stressed)
	if err != nil {
		t.Fatalf("stressed: unexpected error: %v", err)
	}

	if stressedOut.Revenues.At(5) <= baseOut.Revenues.At(5) {
		t.Errorf("high growth year-5 revenue %g should exceed baseline %g", stressedOut.Revenues.At(5), baseOut.Revenues.At(5))
	}
	if stressedOut.PVSum <= baseOut.PVSum {
		t.Errorf("high growth pv sum %g should exceed baseline %g", stressedOut.PVSum, baseOut.PVSum)
	}
}

func TestCompute_HighWACCStress(t *testing.T) {
	base := baseInputs()
	baseOut, err := Compute(base)
	if err != nil {
		t.Fatalf("baseline: unexpected error: %v", err)
	}

	stressed := base
	stressed.WACCInitial = 0.20
	stressed.MatureMarketERP = 0.10
	stressedOut, err := Compute(stressed)
	if err != nil {
		t.Fatalf("stressed: unexpected error: %v", err)
	}

	if stressedOut.StableWACC != 0.14 {
		t.Errorf("stable wacc = %g, want 0.14", stressedOut.StableWACC)
	}
	if stressedOut.PVSum >= baseOut.PVSum {
		t.Errorf("high wacc pv sum %g should be below baseline %g", stressedOut.PVSum, baseOut.PVSum)
	}
}

func TestCompute_FailureProbabilityBlend(t *testing.T) {
	in := baseInputs()
	in.OverrideFailureProbability = true
	in.ProbabilityOfFailure = 0.30
	in.DistressProceedsTie = "B"
	in.DistressProceedsPercent = 0.50

	out, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantProceeds := (in.BookEquity + in.BookDebt) * in.DistressProceedsPercent
	wantBlend := out.PVSum*(1-0.30) + wantProceeds*0.30
	if !almostEqual(out.ValueOfOperatingAssets, wantBlend) {
		t.Errorf("value of operating assets = %g, want %g", out.ValueOfOperatingAssets, wantBlend)
	}
}

func TestCompute_PerpetualGrowthPin(t *testing.T) {
	in := baseInputs()
	in.OverridePerpetualGrowth = true
	in.PerpetualGrowthRate = 0.03

	out, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.PerpetualGrowthRate != 0.03 {
		t.Errorf("perpetual growth = %g, want 0.03", out.PerpetualGrowthRate)
	}
	if out.Growth.Terminal() != 0.03 {
		t.Errorf("terminal growth = %g, want 0.03", out.Growth.Terminal())
	}
}

func TestCompute_NOLShielding(t *testing.T) {
	in := baseInputs()
	in.HasNOLCarryforward = true
	in.NOLStartYear1 = 1e9 // effectively inexhaustible across the explicit forecast

	out, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for year := 1; year <= 10; year++ {
		if !almostEqual(out.AfterTaxEBIT.At(year), out.EBIT.At(year)) {
			t.Errorf("year %d: after-tax EBIT %g should equal pre-tax EBIT %g under an inexhaustible NOL", year, out.AfterTaxEBIT.At(year), out.EBIT.At(year))
		}
	}
}

func TestCompute_ZeroFailureProbabilityMatchesPVSum(t *testing.T) {
	out, err := Compute(baseInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ValueOfOperatingAssets != out.PVSum {
		t.Errorf("value of operating assets %g should equal pv sum %g when probability of failure is zero", out.ValueOfOperatingAssets, out.PVSum)
	}
}

func TestCompute_RevenueCompounding(t *testing.T) {
	out, err := Compute(baseInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prev := 1000.0
	for year := 1; year <= 10; year++ {
		want := prev * (1 + out.Growth.At(year))
		if !almostEqual(out.Revenues.At(year), want) {
			t.Errorf("year %d: revenue %g, want %g", year, out.Revenues.At(year), want)
		}
		prev = out.Revenues.At(year)
	}
}

func TestCompute_MarginConvergenceExact(t *testing.T) {
	in := baseInputs()
	out, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(out.Margin.At(in.MarginConvergenceYear), in.MarginTarget) {
		t.Errorf("margin at convergence year = %g, want target %g", out.Margin.At(in.MarginConvergenceYear), in.MarginTarget)
	}
	for year := in.MarginConvergenceYear; year <= 10; year++ {
		if !almostEqual(out.Margin.At(year), in.MarginTarget) {
			t.Errorf("year %d: margin %g should equal target %g once converged", year, out.Margin.At(year), in.MarginTarget)
		}
	}
}

func TestCompute_TaxRateTerminalExact(t *testing.T) {
	out, err := Compute(baseInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TaxRate.Terminal() != out.TerminalTaxRate {
		t.Errorf("terminal tax rate series value %g does not match resolved terminal tax rate %g", out.TaxRate.Terminal(), out.TerminalTaxRate)
	}
}

func TestCompute_HomogeneityOfScale(t *testing.T) {
	base := baseInputs()
	baseOut, err := Compute(base)
	if err != nil {
		t.Fatalf("baseline: unexpected error: %v", err)
	}

	const k = 3.0
	scaled := base
	scaled.RevenuesBase *= k
	scaled.EBITReportedBase *= k
	scaled.BookEquity *= k
	scaled.BookDebt *= k
	scaled.Cash *= k
	scaledOut, err := Compute(scaled)
	if err != nil {
		t.Fatalf("scaled: unexpected error: %v", err)
	}

	if math.Abs(scaledOut.ValueOfEquity-baseOut.ValueOfEquity*k) > 1e-6*baseOut.ValueOfEquity*k {
		t.Errorf("scaled value of equity %g, want approximately %g", scaledOut.ValueOfEquity, baseOut.ValueOfEquity*k)
	}
}

func TestCompute_StableWACCOverrideNeutrality(t *testing.T) {
	base := baseInputs()
	baseOut, err := Compute(base)
	if err != nil {
		t.Fatalf("baseline: unexpected error: %v", err)
	}

	overridden := base
	overridden.OverrideStableWACC = true
	overridden.StableWACC = baseOut.StableWACC
	overriddenOut, err := Compute(overridden)
	if err != nil {
		t.Fatalf("overridden: unexpected error: %v", err)
	}

	if overriddenOut.EstimatedValuePerShare != baseOut.EstimatedValuePerShare {
		t.Errorf("pinning stable wacc to its own default-derived value changed the result: %g vs %g", overriddenOut.EstimatedValuePerShare, baseOut.EstimatedValuePerShare)
	}
}

func TestCompute_InvalidStableState(t *testing.T) {
	in := baseInputs()
	in.OverrideStableWACC = true
	in.StableWACC = 0.01 // below perpetual growth of 0.04

	_, err := Compute(in)
	if !errors.Is(err, ErrInvalidStableState) {
		t.Fatalf("expected ErrInvalidStableState, got %v", err)
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	in := baseInputs()
	in.SharesOutstanding = 0

	_, err := Compute(in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := baseInputs()
	out1, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out2, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *out1 != *out2 {
		t.Errorf("Compute is not deterministic across repeated calls with identical inputs")
	}
}

func TestCapitalizeRnD(t *testing.T) {
	asset, adj, err := CapitalizeRnD(4, 100, []float64{90, 80, 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantAsset := 100.0 + 90*0.75 + 80*0.50 + 70*0.25 + 0*0
	if !almostEqual(asset, wantAsset) {
		t.Errorf("asset = %g, want %g", asset, wantAsset)
	}

	wantAmort := 90.0/4 + 80.0/4 + 70.0/4 + 0.0/4
	wantAdj := 100 - wantAmort
	if !almostEqual(adj, wantAdj) {
		t.Errorf("ebit adjustment = %g, want %g", adj, wantAdj)
	}
}

func TestCapitalizeRnD_InvalidLife(t *testing.T) {
	_, _, err := CapitalizeRnD(0, 100, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, _, err = CapitalizeRnD(11, 100, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOptionValue_Basic(t *testing.T) {
	v := OptionValue(50, 40, 0.04, 0.30, 5, 10, 100)
	if v <= 0 {
		t.Errorf("in-the-money, long-dated option pool should have positive value, got %g", v)
	}
}

func TestOptionValue_DegenerateInputsReturnZero(t *testing.T) {
	if v := OptionValue(50, 40, 0.04, 0.30, 0, 10, 100); v != 0 {
		t.Errorf("zero time to maturity should value at 0, got %g", v)
	}
	if v := OptionValue(50, 40, 0.04, 0, 5, 10, 100); v != 0 {
		t.Errorf("zero volatility should value at 0, got %g", v)
	}
	if v := OptionValue(50, 0, 0.04, 0.30, 5, 10, 100); v != 0 {
		t.Errorf("zero strike should value at 0, got %g", v)
	}
}
