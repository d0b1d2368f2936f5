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

// CapitalizeRnD converts a company's expensed R&D history into a capitalized
// asset and the EBIT adjustment needed to move reported EBIT onto a
// capitalized basis.
//
// life is the straight-line amortization life in years (1-10). currentExpense
// is the current year's R&D expense. priorExpenses lists prior-year R&D
// expense, newest year first; it may be shorter than life, in which case the
// missing years are treated as zero expense.
func CapitalizeRnD(life int, currentExpense float64, priorExpenses []float64) (asset float64, ebitAdjustment float64, err error) {
	if life < 1 || life > 10 {
		return 0, 0, fmt.Errorf("%w: rnd amortization life must be in [1,10], got %d", ErrInvalidInput, life)
	}

	asset = currentExpense // current year is fully unamortized
	var amortization float64

	for k := 1; k <= life; k++ {
		var expense float64
		if k-1 < len(priorExpenses) {
			expense = priorExpenses[k-1]
		}

		unamortizedFraction := float64(life-k) / float64(life)
		asset += expense * unamortizedFraction
		amortization += expense / float64(life)
	}

	ebitAdjustment = currentExpense - amortization
	return asset, ebitAdjustment, nil
}
