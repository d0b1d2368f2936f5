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
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/penny-vault/ginzu/ginzu"
)

// Store is a Postgres-backed collection of Scenarios.
type Store struct {
	DBUrl string `toml:"dburl"`

	Pool *pgxpool.Pool
}

// Connect opens the database pool for the store, if not already open.
func (store *Store) Connect(ctx context.Context) error {
	if store.Pool != nil {
		return nil
	}

	pool, err := pgxpool.New(ctx, store.DBUrl)
	if err != nil {
		return err
	}
	store.Pool = pool

	return nil
}

// Close releases the database pool.
func (store *Store) Close() {
	store.Pool.Close()
}

// scenarioRow mirrors the scenarios table; Inputs and Outputs are stored as
// jsonb and unmarshaled into their typed form after the scan.
type scenarioRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Inputs    []byte    `db:"inputs"`
	Outputs   []byte    `db:"outputs"`
	CreatedOn time.Time `db:"created_on"`
	CreatedBy string    `db:"created_by"`
}

func (row *scenarioRow) toScenario() (*Scenario, error) {
	var in ginzu.GinzuInputs
	if err := json.Unmarshal(row.Inputs, &in); err != nil {
		return nil, fmt.Errorf("unmarshal stored inputs: %w", err)
	}

	var out ginzu.GinzuOutputs
	if err := json.Unmarshal(row.Outputs, &out); err != nil {
		return nil, fmt.Errorf("unmarshal stored outputs: %w", err)
	}

	return &Scenario{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		Inputs:    in,
		Outputs:   out,
		CreatedOn: row.CreatedOn,
		CreatedBy: row.CreatedBy,
	}, nil
}

// Save inserts a new scenario record.
func (store *Store) Save(ctx context.Context, s *Scenario) error {
	inputsJSON, err := json.Marshal(s.Inputs)
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}

	outputsJSON, err := json.Marshal(s.Outputs)
	if err != nil {
		return fmt.Errorf("marshal outputs: %w", err)
	}

	conn, err := store.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `INSERT INTO scenarios
		(id, name, slug, inputs, outputs, created_on, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.Slug, inputsJSON, outputsJSON, s.CreatedOn, s.CreatedBy)
	return err
}

// List returns every stored scenario, most recent first.
func (store *Store) List(ctx context.Context) ([]*Scenario, error) {
	var rows []*scenarioRow
	err := pgxscan.Select(ctx, store.Pool, &rows, `SELECT id, name, slug, inputs, outputs, created_on, created_by
		FROM scenarios ORDER BY created_on DESC`)
	if err != nil {
		return nil, err
	}

	scenarios := make([]*Scenario, 0, len(rows))
	for _, row := range rows {
		s, err := row.toScenario()
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

// FromIDPrefix fetches the scenario whose id starts with idPrefix.
func (store *Store) FromIDPrefix(ctx context.Context, idPrefix string) (*Scenario, error) {
	conn, err := store.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	dbRows, err := conn.Query(ctx, `SELECT id, name, slug, inputs, outputs, created_on, created_by
		FROM scenarios WHERE id::text LIKE $1`, idPrefix+"%")
	if err != nil {
		return nil, err
	}

	// ScanOne itself fails if idPrefix matches more than one row, so a short
	// prefix shared by two scenarios is rejected here rather than silently
	// resolving to an arbitrary one -- important because DeleteIDPrefix uses
	// the same prefix match with no row cap.
	row := &scenarioRow{}
	if err := pgxscan.ScanOne(row, dbRows); err != nil {
		return nil, err
	}

	return row.toScenario()
}

// DeleteIDPrefix removes every scenario whose id starts with idPrefix and
// reports how many rows were removed.
func (store *Store) DeleteIDPrefix(ctx context.Context, idPrefix string) (int64, error) {
	conn, err := store.Pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, `DELETE FROM scenarios WHERE id::text LIKE $1`, idPrefix+"%")
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
