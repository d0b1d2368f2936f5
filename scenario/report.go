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
	"strings"

	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ListMarkdown renders scenarios as a markdown bullet list, in the order given
// (Store.List returns them newest first), for display with glamour.
func ListMarkdown(scenarios []*Scenario) string {
	p := message.NewPrinter(language.English)
	var builder strings.Builder

	builder.WriteString("# Scenarios\n\n")

	if len(scenarios) == 0 {
		builder.WriteString("No scenarios have been saved yet.\n")
		return builder.String()
	}

	for _, s := range scenarios {
		age := timeago.English.Format(s.CreatedOn)
		p.Fprintf(&builder, "  * **%s** — $%.2f/share (%s, %s) `%s`\n",
			s.Name, s.Outputs.EstimatedValuePerShare, s.CreatedBy, age, s.ID.String()[:8])
	}

	return builder.String()
}

// DetailMarkdown renders the full tableau for a single scenario as markdown.
func DetailMarkdown(s *Scenario) string {
	p := message.NewPrinter(language.English)
	var builder strings.Builder

	p.Fprintf(&builder, "# %s\n\n", s.Name)
	p.Fprintf(&builder, "ID: `%s`\n\n", s.ID.String())
	p.Fprintf(&builder, "Created by %s, %s\n\n", s.CreatedBy, timeago.English.Format(s.CreatedOn))

	builder.WriteString("## Headline\n\n")
	p.Fprintf(&builder, "  * Estimated value per share: **$%.2f**\n", s.Outputs.EstimatedValuePerShare)
	p.Fprintf(&builder, "  * Value of equity: $%.2f\n", s.Outputs.ValueOfEquity)
	p.Fprintf(&builder, "  * Value of operating assets: $%.2f\n", s.Outputs.ValueOfOperatingAssets)
	p.Fprintf(&builder, "  * PV of explicit FCFF (Years 1-10): $%.2f\n", s.Outputs.PV10Y)
	p.Fprintf(&builder, "  * PV of terminal value: $%.2f\n\n", s.Outputs.PVTerminalValue)

	builder.WriteString("## Stable state\n\n")
	p.Fprintf(&builder, "  * Perpetual growth: %.2f%%\n", s.Outputs.PerpetualGrowthRate*100)
	p.Fprintf(&builder, "  * Stable WACC: %.2f%%\n", s.Outputs.StableWACC*100)
	p.Fprintf(&builder, "  * Stable ROC: %.2f%%\n", s.Outputs.StableROC*100)
	p.Fprintf(&builder, "  * Terminal tax rate: %.2f%%\n\n", s.Outputs.TerminalTaxRate*100)

	builder.WriteString("## Year-by-year\n\n")
	builder.WriteString("| Year | Revenue | Margin | EBIT | After-tax EBIT | FCFF | WACC | PV(FCFF) |\n")
	builder.WriteString("|---|---|---|---|---|---|---|---|\n")
	for year := 1; year <= 10; year++ {
		p.Fprintf(&builder, "| %d | %.1f | %.1f%% | %.1f | %.1f | %.1f | %.1f%% | %.1f |\n",
			year,
			s.Outputs.Revenues.At(year),
			s.Outputs.Margin.At(year)*100,
			s.Outputs.EBIT.At(year),
			s.Outputs.AfterTaxEBIT.At(year),
			s.Outputs.FCFF.At(year),
			s.Outputs.WACC.At(year)*100,
			s.Outputs.PVFCFF.At(year),
		)
	}

	return builder.String()
}
