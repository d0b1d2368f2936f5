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

// Package scenario persists named Ginzu valuation runs so a history of
// estimates for the same company can be listed, inspected, and compared.
package scenario

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/penny-vault/ginzu/ginzu"
)

// Scenario is a single named valuation run: the inputs that produced it, the
// full output tableau, and bookkeeping about who ran it and when.
type Scenario struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Inputs    ginzu.GinzuInputs
	Outputs   ginzu.GinzuOutputs
	CreatedOn time.Time
	CreatedBy string
}

// New computes in and wraps the result as a Scenario ready to be saved.
func New(name, createdBy string, in ginzu.GinzuInputs) (*Scenario, error) {
	out, err := ginzu.Compute(in)
	if err != nil {
		return nil, err
	}

	return &Scenario{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug.Make(name),
		Inputs:    in,
		Outputs:   *out,
		CreatedOn: time.Now(),
		CreatedBy: createdBy,
	}, nil
}
