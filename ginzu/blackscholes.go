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
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// OptionValue computes the dilution-adjusted Black-Scholes value of a pool of
// employee stock options.
//
// stockPrice and strike are the current share price and the options' (average)
// strike price; riskfreeRate and volatility are annualized; timeToMaturity is
// in years; numOptions and sharesOutstanding are counts on the same scale.
//
// The result is the total value of the option pool, suitable for subtracting
// from equity value in the equity bridge.
func OptionValue(stockPrice, strike, riskfreeRate, volatility, timeToMaturity, numOptions, sharesOutstanding float64) float64 {
	if timeToMaturity <= 0 || volatility <= 0 || strike <= 0 {
		return 0
	}

	dilutedPrice := (stockPrice*sharesOutstanding + strike*numOptions) / (sharesOutstanding + numOptions)
	if dilutedPrice <= 0 {
		return 0
	}

	sqrtT := math.Sqrt(timeToMaturity)
	d1 := (math.Log(dilutedPrice/strike) + (riskfreeRate+volatility*volatility/2)*timeToMaturity) / (volatility * sqrtT)
	d2 := d1 - volatility*sqrtT

	call := dilutedPrice*standardNormal.CDF(d1) - strike*math.Exp(-riskfreeRate*timeToMaturity)*standardNormal.CDF(d2)

	return call * numOptions
}
