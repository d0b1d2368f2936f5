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

// Series holds a value for each of the ten explicit forecast years plus the
// terminal year. Index 0 is Year 1 ... index 9 is Year 10; index 10 is the
// terminal slot. Use At and Terminal rather than indexing directly so callers
// don't need to remember the 1-based-year/0-based-index offset.
type Series [11]float64

// At returns the value for explicit forecast year (1-10).
func (s Series) At(year int) float64 {
	return s[year-1]
}

// Terminal returns the stable-state (post Year 10) value.
func (s Series) Terminal() float64 {
	return s[10]
}

// Years returns the ten explicit-forecast-year values, in order.
func (s Series) Years() [10]float64 {
	var out [10]float64
	copy(out[:], s[:10])
	return out
}

// GinzuOutputs is the full year-by-year tableau produced by Compute, plus the
// headline scalars folded out of it.
type GinzuOutputs struct {
	Revenues       Series
	Growth         Series
	Margin         Series
	EBIT           Series
	TaxRate        Series
	AfterTaxEBIT   Series
	SalesToCapital Series
	Reinvestment   Series
	FCFF           Series
	WACC           Series
	DiscountFactor Series
	PVFCFF         Series

	// EBITBase is the adjusted base-year EBIT (reported EBIT plus any R&D or
	// lease capitalization adjustment). It is reported for reference only: the
	// Year 1-10 EBIT path is revenues times the margin path and does not read it.
	EBITBase float64

	PV10Y                  float64
	PVTerminalValue        float64
	PVSum                  float64
	ValueOfOperatingAssets float64
	ValueOfEquity          float64
	ValueOfEquityCommon    float64
	EstimatedValuePerShare float64

	// Stable-state parameters actually used, after resolving overrides.
	PerpetualGrowthRate float64
	StableWACC          float64
	StableROC           float64
	TerminalTaxRate     float64
}
