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
	"fmt"
	"math"
)

// Compute runs the fourteen-step Simple Ginzu projection pipeline over in and
// returns the full tableau plus headline equity value. Compute is pure: it
// performs no I/O, reads no clock, and has no hidden state across calls.
//
// Compute returns a wrapped ErrInvalidInput, ErrInvalidStableState, or
// ErrNumericOverflow if in fails validation or the resolved stable state is
// internally inconsistent. A failed call returns a nil *GinzuOutputs.
func Compute(in GinzuInputs) (*GinzuOutputs, error) {
	if err := canonicalize(&in); err != nil {
		return nil, err
	}

	out := &GinzuOutputs{}

	// Step 0 -- resolve the stable-state parameters that steps 1-10 need.
	// Growth, stable WACC, and terminal tax rate depend only on scalar
	// inputs, so they (and the WACC path / discount factors of Step 10,
	// which likewise depend only on scalars per the ordering guarantees in
	// spec section 5) can be computed before the revenue/EBIT/tax chain.
	g := resolvePerpetualGrowth(in)
	stableWACC := resolveStableWACC(in)
	terminalTaxRate := in.TaxRateMarginal
	if in.OverrideTaxRateConvergence {
		terminalTaxRate = in.TaxRateEffective
	}

	wacc, discountFactor := costOfCapitalPath(in, stableWACC)

	stableROC := wacc.Terminal()
	if in.OverrideStableROC {
		stableROC = in.StableROC
	}

	// Step 1 -- growth path.
	growth := growthPath(in, g)

	// Step 2 -- revenues.
	revenues := revenuePath(in, growth, g)

	// Step 3 -- margin path.
	margin := marginPath(in)

	// Step 4 -- adjusted base EBIT and forecast EBIT.
	ebitBase := in.EBITReportedBase
	if in.CapitalizeOperatingLeases {
		ebitBase += in.LeaseEBITAdjustment
	}
	if in.CapitalizeRnD {
		ebitBase += in.RnDEBITAdjustment
	}

	var ebit Series
	for t := 1; t <= 10; t++ {
		ebit[t-1] = revenues.At(t) * margin.At(t)
	}
	ebit[10] = revenues.Terminal() * margin.Terminal()

	// Step 5 -- tax-rate path.
	taxRate := taxRatePath(in, terminalTaxRate)

	// Step 6 -- NOL-shielded after-tax EBIT.
	afterTax := afterTaxEBIT(in, ebit, taxRate, terminalTaxRate)

	if g > 0 && afterTax.Terminal() > 0 && stableROC <= 0 {
		return nil, fmt.Errorf("%w: stable_roc must be > 0 when perpetual growth and terminal after-tax EBIT are both positive, got %g", ErrInvalidStableState, stableROC)
	}

	// Step 7 -- sales-to-capital path.
	var s2c Series
	for t := 1; t <= 5; t++ {
		s2c[t-1] = in.SalesToCapital1To5
	}
	for t := 6; t <= 10; t++ {
		s2c[t-1] = in.SalesToCapital6To10
	}
	s2c[10] = in.SalesToCapital6To10

	// Step 8 -- reinvestment with lag.
	reinvestment := reinvestmentPath(in, revenues, afterTax, g, stableROC, s2c)

	// Step 9 -- FCFF.
	var fcff Series
	for t := 1; t <= 10; t++ {
		fcff[t-1] = afterTax.At(t) - reinvestment.At(t)
	}
	fcff[10] = afterTax.Terminal() - reinvestment.Terminal()

	// Step 11 -- PV of explicit FCFF.
	var pvfcff Series
	var pv10y float64
	for t := 1; t <= 10; t++ {
		pvfcff[t-1] = fcff.At(t) * discountFactor.At(t)
		pv10y += pvfcff[t-1]
	}

	// Step 12 -- terminal value.
	if stableWACC <= g {
		return nil, fmt.Errorf("%w: stable_wacc (%g) must be > perpetual growth (%g)", ErrInvalidStableState, stableWACC, g)
	}
	tv := fcff.Terminal() / (stableWACC - g)
	pvTerminalValue := tv * discountFactor.Terminal()
	pvSum := pv10y + pvTerminalValue

	// Step 13 -- failure-probability adjustment.
	var probabilityOfFailure float64
	if in.OverrideFailureProbability {
		probabilityOfFailure = in.ProbabilityOfFailure
	}
	var proceeds float64
	if in.OverrideFailureProbability {
		switch in.DistressProceedsTie {
		case "B":
			proceeds = (in.BookEquity + in.BookDebt) * in.DistressProceedsPercent
		case "V":
			proceeds = pvSum * in.DistressProceedsPercent
		}
	}
	valueOfOperatingAssets := pvSum*(1-probabilityOfFailure) + proceeds*probabilityOfFailure

	// Step 14 -- equity bridge.
	debtBridge := in.BookDebt
	if in.CapitalizeOperatingLeases {
		debtBridge += in.LeaseDebt
	}

	cashAdj := in.Cash
	if in.OverrideTrappedCash {
		cashAdj -= in.TrappedCashAmount * (in.TaxRateMarginal - in.TrappedCashForeignTaxRate)
	}

	valueOfEquity := valueOfOperatingAssets - debtBridge - in.MinorityInterests + cashAdj + in.NonOperatingAssets

	valueOfEquityCommon := valueOfEquity
	if in.HasEmployeeOptions {
		valueOfEquityCommon -= in.OptionsValue
	}

	estimatedValuePerShare := valueOfEquityCommon / in.SharesOutstanding

	out.Revenues = revenues
	out.Growth = growth
	out.Margin = margin
	out.EBIT = ebit
	out.TaxRate = taxRate
	out.AfterTaxEBIT = afterTax
	out.SalesToCapital = s2c
	out.Reinvestment = reinvestment
	out.FCFF = fcff
	out.WACC = wacc
	out.DiscountFactor = discountFactor
	out.PVFCFF = pvfcff

	out.EBITBase = ebitBase

	out.PV10Y = pv10y
	out.PVTerminalValue = pvTerminalValue
	out.PVSum = pvSum
	out.ValueOfOperatingAssets = valueOfOperatingAssets
	out.ValueOfEquity = valueOfEquity
	out.ValueOfEquityCommon = valueOfEquityCommon
	out.EstimatedValuePerShare = estimatedValuePerShare

	out.PerpetualGrowthRate = g
	out.StableWACC = stableWACC
	out.StableROC = stableROC
	out.TerminalTaxRate = terminalTaxRate

	if err := checkFinite(out); err != nil {
		return nil, err
	}

	return out, nil
}

func resolvePerpetualGrowth(in GinzuInputs) float64 {
	switch {
	case in.OverridePerpetualGrowth:
		return in.PerpetualGrowthRate
	case in.OverrideRiskfreeAfterYear10:
		return in.RiskfreeRateAfter10
	default:
		return in.RiskfreeRateNow
	}
}

func resolveStableWACC(in GinzuInputs) float64 {
	if in.OverrideStableWACC {
		return in.StableWACC
	}

	riskfreeForStable := in.RiskfreeRateNow
	if in.OverrideRiskfreeAfterYear10 {
		riskfreeForStable = in.RiskfreeRateAfter10
	}
	return riskfreeForStable + in.MatureMarketERP
}

func growthPath(in GinzuInputs, g float64) Series {
	var growth Series
	growth[0] = in.RevGrowthY1
	for t := 2; t <= 5; t++ {
		growth[t-1] = in.RevCAGRY2To5
	}
	year5 := growth[4]
	for k := 1; k <= 5; k++ {
		growth[5+k-1] = year5 - float64(k)*(year5-g)/5
	}
	growth[10] = g
	return growth
}

func revenuePath(in GinzuInputs, growth Series, g float64) Series {
	var revenues Series
	prev := in.RevenuesBase
	for t := 1; t <= 10; t++ {
		prev = prev * (1 + growth.At(t))
		revenues[t-1] = prev
	}
	revenues[10] = revenues[9] * (1 + g)
	return revenues
}

func marginPath(in GinzuInputs) Series {
	var margin Series
	margin[0] = in.MarginY1
	convergenceYear := in.MarginConvergenceYear
	for t := 2; t <= 10; t++ {
		if t > convergenceYear {
			margin[t-1] = in.MarginTarget
		} else {
			margin[t-1] = in.MarginTarget - ((in.MarginTarget-in.MarginY1)/float64(convergenceYear))*float64(convergenceYear-t)
		}
	}
	margin[10] = margin[9]
	return margin
}

func taxRatePath(in GinzuInputs, terminalTaxRate float64) Series {
	var taxRate Series
	for t := 1; t <= 5; t++ {
		taxRate[t-1] = in.TaxRateEffective
	}
	year5 := taxRate[4]
	for k := 1; k <= 5; k++ {
		taxRate[5+k-1] = year5 + float64(k)*(terminalTaxRate-year5)/5
	}
	taxRate[10] = terminalTaxRate
	return taxRate
}

func afterTaxEBIT(in GinzuInputs, ebit, taxRate Series, terminalTaxRate float64) Series {
	var afterTax Series

	var nol float64
	if in.HasNOLCarryforward {
		nol = in.NOLStartYear1
	}

	for t := 1; t <= 10; t++ {
		e := ebit.At(t)
		switch {
		case e <= 0:
			afterTax[t-1] = e
			nol -= e
		case e < nol:
			afterTax[t-1] = e
			nol -= e
		default:
			taxes := (e - nol) * taxRate.At(t)
			afterTax[t-1] = e - taxes
			nol = 0
		}
	}

	afterTax[10] = ebit.Terminal() * (1 - terminalTaxRate)
	return afterTax
}

func costOfCapitalPath(in GinzuInputs, stableWACC float64) (wacc Series, discountFactor Series) {
	for t := 1; t <= 5; t++ {
		wacc[t-1] = in.WACCInitial
	}
	year5 := wacc[4]
	for k := 1; k <= 5; k++ {
		wacc[5+k-1] = year5 - float64(k)*(year5-stableWACC)/5
	}
	wacc[10] = stableWACC

	discountFactor[0] = 1 / (1 + wacc.At(1))
	for t := 2; t <= 10; t++ {
		discountFactor[t-1] = discountFactor.At(t-1) / (1 + wacc.At(t))
	}
	discountFactor[10] = discountFactor[9]

	return wacc, discountFactor
}

// requiredRevenueAfter returns the revenue anchor used by the reinvestment
// step for an arbitrary forward year. year 1-10 reads the explicit forecast;
// year 11 is the terminal (stable-growth) revenue; years beyond 11 extrapolate
// at the perpetual growth rate g from the terminal revenue, per spec section 9
// ("reinvestment lag beyond Year 10").
func requiredRevenueAfter(revenues Series, g float64, year int) float64 {
	if year <= 10 {
		return revenues.At(year)
	}
	return revenues.Terminal() * math.Pow(1+g, float64(year-11))
}

func reinvestmentPath(in GinzuInputs, revenues, afterTax Series, g, stableROC float64, s2c Series) Series {
	lag := 1
	if in.OverrideReinvestmentLag {
		lag = in.ReinvestmentLagYears
	}

	var reinvestment Series
	for t := 1; t <= 10; t++ {
		delta := requiredRevenueAfter(revenues, g, t+lag) - requiredRevenueAfter(revenues, g, t)
		reinvestment[t-1] = delta / s2c.At(t)
	}

	if g > 0 {
		reinvestment[10] = afterTax.Terminal() * g / stableROC
	}

	return reinvestment
}

func checkFinite(out *GinzuOutputs) error {
	allSeries := []Series{
		out.Revenues, out.Growth, out.Margin, out.EBIT, out.TaxRate, out.AfterTaxEBIT,
		out.SalesToCapital, out.Reinvestment, out.FCFF, out.WACC, out.DiscountFactor, out.PVFCFF,
	}
	for _, s := range allSeries {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: a projected series contains a non-finite value", ErrNumericOverflow)
			}
		}
	}

	headline := []float64{
		out.PV10Y, out.PVTerminalValue, out.PVSum, out.ValueOfOperatingAssets,
		out.ValueOfEquity, out.ValueOfEquityCommon, out.EstimatedValuePerShare,
	}
	for _, v := range headline {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: a headline value is non-finite", ErrNumericOverflow)
		}
	}

	return nil
}
