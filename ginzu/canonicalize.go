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

import "fmt"

// canonicalize validates an inputs record before the projection pipeline runs.
// The pipeline itself never re-checks these constraints; it trusts that
// whatever reaches it has already passed through here. canonicalize does not
// mutate in, it only rejects out-of-range values -- there are no "fill in a
// default" fields left in GinzuInputs that canonicalize needs to populate,
// since every field is either required or only consulted when its override
// switch is on (and the switch/payload pairing is itself the default
// mechanism: a switch left off is identical to a default of "don't apply this
// adjustment").
func canonicalize(in *GinzuInputs) error {
	if in.RevenuesBase < 0 {
		return fmt.Errorf("%w: revenues_base must be >= 0, got %g", ErrInvalidInput, in.RevenuesBase)
	}
	if in.BookDebt < 0 {
		return fmt.Errorf("%w: book_debt must be >= 0, got %g", ErrInvalidInput, in.BookDebt)
	}
	if in.Cash < 0 {
		return fmt.Errorf("%w: cash must be >= 0, got %g", ErrInvalidInput, in.Cash)
	}
	if in.NonOperatingAssets < 0 {
		return fmt.Errorf("%w: non_operating_assets must be >= 0, got %g", ErrInvalidInput, in.NonOperatingAssets)
	}
	if in.MinorityInterests < 0 {
		return fmt.Errorf("%w: minority_interests must be >= 0, got %g", ErrInvalidInput, in.MinorityInterests)
	}
	if in.SharesOutstanding <= 0 {
		return fmt.Errorf("%w: shares_outstanding must be > 0, got %g", ErrInvalidInput, in.SharesOutstanding)
	}
	if in.SalesToCapital1To5 <= 0 {
		return fmt.Errorf("%w: sales_to_capital_1_5 must be > 0, got %g", ErrInvalidInput, in.SalesToCapital1To5)
	}
	if in.SalesToCapital6To10 <= 0 {
		return fmt.Errorf("%w: sales_to_capital_6_10 must be > 0, got %g", ErrInvalidInput, in.SalesToCapital6To10)
	}
	if in.TaxRateEffective < 0 || in.TaxRateEffective > 1 {
		return fmt.Errorf("%w: tax_rate_effective must be in [0,1], got %g", ErrInvalidInput, in.TaxRateEffective)
	}
	if in.TaxRateMarginal < 0 || in.TaxRateMarginal > 1 {
		return fmt.Errorf("%w: tax_rate_marginal must be in [0,1], got %g", ErrInvalidInput, in.TaxRateMarginal)
	}
	if in.MarginConvergenceYear < 1 || in.MarginConvergenceYear > 10 {
		return fmt.Errorf("%w: margin_convergence_year must be in [1,10], got %d", ErrInvalidInput, in.MarginConvergenceYear)
	}

	if in.OverrideReinvestmentLag {
		if in.ReinvestmentLagYears < 0 || in.ReinvestmentLagYears > 3 {
			return fmt.Errorf("%w: reinvestment_lag_years must be in [0,3], got %d", ErrInvalidInput, in.ReinvestmentLagYears)
		}
	}

	if in.OverrideFailureProbability {
		if in.DistressProceedsTie != "B" && in.DistressProceedsTie != "V" {
			return fmt.Errorf("%w: distress_proceeds_tie must be \"B\" or \"V\", got %q", ErrInvalidInput, in.DistressProceedsTie)
		}
		if in.ProbabilityOfFailure < 0 || in.ProbabilityOfFailure > 1 {
			return fmt.Errorf("%w: probability_of_failure must be in [0,1], got %g", ErrInvalidInput, in.ProbabilityOfFailure)
		}
	}

	return nil
}
