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

// Package marketdata lets a caller seed a subset of GinzuInputs' base-year
// snapshot fields from an external source instead of typing them by hand.
// ginzu's own Compute never imports this package -- the engine stays pure and
// has no network dependency of its own.
package marketdata

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Snapshot is the subset of a company's base-year financials a Source can
// supply. Zero-value fields are left for the caller to fill in by hand.
type Snapshot struct {
	RevenuesBase      float64
	EBITReportedBase  float64
	BookEquity        float64
	BookDebt          float64
	Cash              float64
	SharesOutstanding float64
	StockPrice        float64
	RiskfreeRateNow   float64
}

// Source fetches a Snapshot for a ticker from an external data provider.
type Source interface {
	Name() string
	Fetch(ctx context.Context, ticker string) (*Snapshot, error)
}

// RESTSource is a Source backed by a JSON-over-HTTPS API, rate limited on the
// client side so a batch of lookups doesn't trip the provider's own limits.
type RESTSource struct {
	SourceName string
	BaseURL    string
	APIKey     string

	client  *resty.Client
	limiter *rate.Limiter
}

// NewRESTSource builds a RESTSource allowing at most requestsPerMinute calls
// to Fetch per minute.
func NewRESTSource(name, baseURL, apiKey string, requestsPerMinute int) *RESTSource {
	return &RESTSource{
		SourceName: name,
		BaseURL:    baseURL,
		APIKey:     apiKey,
		client:     resty.New().SetBaseURL(baseURL),
		limiter:    rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
	}
}

func (src *RESTSource) Name() string {
	return src.SourceName
}

func (src *RESTSource) Fetch(ctx context.Context, ticker string) (*Snapshot, error) {
	if err := src.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var snap Snapshot
	resp, err := src.client.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", src.APIKey)).
		SetPathParam("ticker", ticker).
		SetResult(&snap).
		Get("/snapshot/{ticker}")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%s: snapshot fetch for %s failed with status %d", src.SourceName, ticker, resp.StatusCode())
	}

	return &snap, nil
}
