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

// Package monitor pings a healthchecks.io-style dead-man's-switch URL after a
// valuation run, so a missed or failing scheduled run pages someone instead
// of silently falling behind.
package monitor

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var ErrStatus = errors.New("status code is invalid")

// Ping reports a successful run to the monitor endpoint at pingURL.
func Ping(pingURL string) error {
	client := resty.New()
	resp, err := client.R().Get(pingURL)
	if err != nil {
		return err
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	return nil
}

// PingFail reports a failed run to the monitor endpoint at pingURL.
func PingFail(pingURL string) error {
	client := resty.New()
	resp, err := client.R().Get(pingURL + "/fail")
	if err != nil {
		return err
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	return nil
}
