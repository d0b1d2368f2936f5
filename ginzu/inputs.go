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

// Package ginzu implements the Simple Ginzu FCFF discounted cash-flow valuation
// model: a ten-year explicit forecast plus a stable-growth terminal year, folded
// into a single intrinsic equity value per share. The package is pure: Compute
// never performs I/O and has no hidden state.
package ginzu

// GinzuInputs is the fully-specified, immutable configuration bundle consumed by
// Compute. Every recognized field is listed here explicitly; there is no
// dynamically-keyed assumption bag. Override switches are modeled as a bool
// paired with the scalar payload(s) that are read iff the switch is on.
type GinzuInputs struct {
	// Base-year snapshot. All currency fields must share one consistent unit
	// (e.g. millions); SharesOutstanding must be expressed on the same scale.

	// RevenuesBase is trailing twelve month revenue. Must be >= 0.
	RevenuesBase float64
	// EBITReportedBase is reported operating income before any R&D or lease
	// capitalization adjustment. Sign is unrestricted.
	EBITReportedBase float64
	BookEquity       float64
	// BookDebt is interest-bearing debt at book value. Must be >= 0.
	BookDebt float64
	// Cash is cash and marketable securities. Must be >= 0.
	Cash float64
	// NonOperatingAssets are assets not reflected in operating cash flow
	// (cross holdings, etc). Must be >= 0.
	NonOperatingAssets float64
	// MinorityInterests is the book value of minority interests. Must be >= 0.
	MinorityInterests float64
	// SharesOutstanding must be > 0 and on the same scale as the currency
	// fields so per-share output is currency-per-share.
	SharesOutstanding float64
	// StockPrice is informational only; the engine never reads it to produce
	// estimated_value_per_share.
	StockPrice float64

	// Growth drivers. Fractions, may be negative.
	RevGrowthY1   float64
	RevCAGRY2To5  float64

	// Margin drivers.
	MarginY1 float64
	// MarginTarget is the operating margin the company converges to.
	MarginTarget float64
	// MarginConvergenceYear is the explicit forecast year at which margin
	// first equals MarginTarget. Must be in [1, 10].
	MarginConvergenceYear int

	// Reinvestment intensity, expressed as sales-to-capital ratios. Both must
	// be > 0.
	SalesToCapital1To5   float64
	SalesToCapital6To10  float64

	// Rates. Fractions; the tax rates must lie in [0, 1].
	RiskfreeRateNow  float64
	WACCInitial      float64
	TaxRateEffective float64
	TaxRateMarginal  float64
	// MatureMarketERP is only consulted when stable WACC is not overridden.
	MatureMarketERP float64

	// Override: pin perpetual growth g directly instead of deriving it from
	// a riskfree rate.
	OverridePerpetualGrowth bool
	PerpetualGrowthRate     float64

	// Override: use a riskfree rate specific to the post-Year-10 stable state
	// in place of RiskfreeRateNow, both for g (when not separately pinned)
	// and for the default derivation of stable WACC.
	OverrideRiskfreeAfterYear10 bool
	RiskfreeRateAfter10         float64

	// Override: pin the terminal cost of capital directly.
	OverrideStableWACC bool
	StableWACC         float64

	// Override: pin the terminal return on capital directly, instead of
	// defaulting to the Year-10 WACC.
	OverrideStableROC bool
	StableROC         float64

	// Override: terminal tax rate converges to TaxRateEffective instead of
	// TaxRateMarginal.
	OverrideTaxRateConvergence bool

	// Override: blend operating-asset value with a distress-proceeds
	// expectation.
	OverrideFailureProbability bool
	ProbabilityOfFailure       float64
	// DistressProceedsTie is "B" (book capital) or "V" (DCF value).
	DistressProceedsTie    string
	DistressProceedsPercent float64

	// Override: shift the revenue-delta year used to compute reinvestment.
	OverrideReinvestmentLag bool
	// ReinvestmentLagYears must be in [0, 3] when the override is set.
	ReinvestmentLagYears int

	// Net operating loss carryforward, seeded at the start of Year 1.
	HasNOLCarryforward bool
	NOLStartYear1      float64

	// Override: part of Cash is trapped abroad and taxed at repatriation at
	// TaxRateMarginal less the foreign rate already paid.
	OverrideTrappedCash       bool
	TrappedCashAmount         float64
	TrappedCashForeignTaxRate float64

	// Optional module: R&D capitalization. See the rnd.go helper for how
	// RnDAsset/RnDEBITAdjustment are typically derived.
	CapitalizeRnD     bool
	RnDAsset          float64
	RnDEBITAdjustment float64

	// Optional module: operating lease capitalization. The lease-to-debt
	// conversion is computed by the caller; the engine only consumes the
	// resulting debt and EBIT adjustments.
	CapitalizeOperatingLeases bool
	LeaseDebt                 float64
	LeaseEBITAdjustment       float64

	// Optional module: employee stock options, valued by the caller (see
	// blackscholes.go) and subtracted from equity value.
	HasEmployeeOptions bool
	OptionsValue       float64
}
