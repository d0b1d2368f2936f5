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

import "errors"

// Sentinel errors identifying the taxonomy a failed valuation falls into.
// Wrap these with fmt.Errorf("%w: ...") to name the offending field so
// errors.Is still works for callers that only care about the taxonomy.
var (
	// ErrInvalidInput is returned when a field violates a sign, range, or
	// enum constraint described in the data model.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidStableState is returned when the resolved terminal-year
	// parameters are internally inconsistent (stable WACC at or below
	// perpetual growth, or a non-positive stable return on capital when
	// growth and terminal after-tax EBIT are both positive).
	ErrInvalidStableState = errors.New("invalid stable state")

	// ErrNumericOverflow is returned when an intermediate series becomes
	// non-finite (NaN or +/-Inf).
	ErrNumericOverflow = errors.New("numeric overflow")
)
