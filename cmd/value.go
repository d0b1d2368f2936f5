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
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"github.com/penny-vault/ginzu/ginzu"
	"github.com/penny-vault/ginzu/marketdata"
	"github.com/penny-vault/ginzu/monitor"
	"github.com/penny-vault/ginzu/scenario"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	valueInputFile string
	valueTicker    string
	valueSave      bool
)

// valueCmd represents the value command
var valueCmd = &cobra.Command{
	Use:   "value <name>",
	Short: "Run a Ginzu DCF valuation",
	Long: `value runs the Simple Ginzu discounted cash-flow model over a set of
inputs and prints the resulting valuation.

Inputs are read, in order of preference:

  1. From --file, a TOML document matching ginzu.GinzuInputs
  2. Gathered interactively, with --ticker used to pre-fill the base-year
     snapshot fields from a configured market data source

Pass --save to persist the resulting scenario to the configured database.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		ctx := context.Background()
		pingURL := viper.GetString("monitor.pingUrl")

		in, err := gatherInputs(ctx, valueInputFile, valueTicker)
		if err != nil {
			log.Fatal().Err(err).Msg("could not gather valuation inputs")
		}

		createdBy := os.Getenv("USER")
		s, err := scenario.New(name, createdBy, *in)
		if err != nil {
			notifyMonitor(pingURL, false)
			log.Fatal().Err(err).Msg("valuation failed")
		}

		printValuationSummary(s)

		if valueSave {
			store := &scenario.Store{DBUrl: viper.GetString("DBUrl")}
			if err := store.Connect(ctx); err != nil {
				notifyMonitor(pingURL, false)
				log.Fatal().Err(err).Msg("could not connect to database")
			}
			defer store.Close()

			if err := store.Save(ctx, s); err != nil {
				notifyMonitor(pingURL, false)
				log.Fatal().Err(err).Msg("could not save scenario")
			}

			log.Info().Str("ID", s.ID.String()).Msg("scenario saved")
		}

		notifyMonitor(pingURL, true)
	},
}

// notifyMonitor pings the configured dead-man's-switch endpoint, if any, to
// report whether this run succeeded. A down or unconfigured monitor does not
// fail the valuation itself.
func notifyMonitor(pingURL string, ok bool) {
	if pingURL == "" {
		return
	}

	var err error
	if ok {
		err = monitor.Ping(pingURL)
	} else {
		err = monitor.PingFail(pingURL)
	}
	if err != nil {
		log.Warn().Err(err).Msg("could not notify monitor")
	}
}

// floatBinding backs a single huh.Input with a string, and knows how to
// write the parsed result back into the GinzuInputs field it represents.
// huh.Input only edits strings, so every float64 field gathered
// interactively goes through one of these.
type floatBinding struct {
	title string
	text  string
	dest  *float64
}

func bindFloat(title string, dest *float64) *floatBinding {
	return &floatBinding{title: title, text: fmt.Sprintf("%g", *dest), dest: dest}
}

func (b *floatBinding) field() huh.Field {
	return huh.NewInput().Title(b.title).Value(&b.text)
}

func (b *floatBinding) apply() error {
	v, err := strconv.ParseFloat(b.text, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", b.title, err)
	}
	*b.dest = v
	return nil
}

// gatherInputs builds a GinzuInputs either from a TOML file or an
// interactive wizard, optionally seeded from a market data source.
func gatherInputs(ctx context.Context, file, ticker string) (*ginzu.GinzuInputs, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		var in ginzu.GinzuInputs
		if err := toml.Unmarshal(data, &in); err != nil {
			return nil, err
		}

		return &in, nil
	}

	in := &ginzu.GinzuInputs{
		MarginConvergenceYear: 5,
	}

	if ticker != "" {
		src := marketdata.NewRESTSource("configured-source", viper.GetString("marketdata.baseUrl"), viper.GetString("marketdata.apiKey"), viper.GetInt("marketdata.rateLimit"))
		snap, err := src.Fetch(ctx, ticker)
		if err != nil {
			log.Warn().Err(err).Str("Ticker", ticker).Msg("could not fetch market data snapshot, falling back to manual entry")
		} else {
			in.RevenuesBase = snap.RevenuesBase
			in.EBITReportedBase = snap.EBITReportedBase
			in.BookEquity = snap.BookEquity
			in.BookDebt = snap.BookDebt
			in.Cash = snap.Cash
			in.SharesOutstanding = snap.SharesOutstanding
			in.StockPrice = snap.StockPrice
			in.RiskfreeRateNow = snap.RiskfreeRateNow
		}
	}

	bindings := []*floatBinding{
		bindFloat("Trailing twelve month revenue", &in.RevenuesBase),
		bindFloat("Reported operating income (EBIT)", &in.EBITReportedBase),
		bindFloat("Book value of debt", &in.BookDebt),
		bindFloat("Cash and marketable securities", &in.Cash),
		bindFloat("Shares outstanding", &in.SharesOutstanding),
		bindFloat("Year 1 revenue growth rate (e.g. 0.15)", &in.RevGrowthY1),
		bindFloat("Years 2-5 revenue CAGR", &in.RevCAGRY2To5),
		bindFloat("Year 1 operating margin", &in.MarginY1),
		bindFloat("Target operating margin", &in.MarginTarget),
		bindFloat("Sales-to-capital ratio, Years 1-5", &in.SalesToCapital1To5),
		bindFloat("Sales-to-capital ratio, Years 6-10", &in.SalesToCapital6To10),
		bindFloat("Risk-free rate", &in.RiskfreeRateNow),
		bindFloat("Initial WACC", &in.WACCInitial),
		bindFloat("Effective tax rate", &in.TaxRateEffective),
		bindFloat("Marginal tax rate", &in.TaxRateMarginal),
		bindFloat("Mature market equity risk premium", &in.MatureMarketERP),
	}

	fields := make([]huh.Field, 0, len(bindings))
	for _, b := range bindings {
		fields = append(fields, b.field())
	}

	groupSize := 5
	var groups []*huh.Group
	for start := 0; start < len(fields); start += groupSize {
		end := start + groupSize
		if end > len(fields) {
			end = len(fields)
		}
		groups = append(groups, huh.NewGroup(fields[start:end]...))
	}

	form := huh.NewForm(groups...)
	if err := form.Run(); err != nil {
		return nil, err
	}

	for _, b := range bindings {
		if err := b.apply(); err != nil {
			return nil, err
		}
	}

	return in, nil
}

func printValuationSummary(s *scenario.Scenario) {
	keyword := func(str string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render(str)
	}

	body := fmt.Sprintf(
		"%s\n\nName: %s\nID: %s\n\nEstimated value per share: %s\nValue of equity: %s\nValue of operating assets: %s\n",
		lipgloss.NewStyle().Bold(true).Render("VALUATION RESULT"),
		keyword(s.Name),
		keyword(s.ID.String()),
		keyword(fmt.Sprintf("$%.2f", s.Outputs.EstimatedValuePerShare)),
		keyword(fmt.Sprintf("$%.2f", s.Outputs.ValueOfEquity)),
		keyword(fmt.Sprintf("$%.2f", s.Outputs.ValueOfOperatingAssets)),
	)

	fmt.Println(
		lipgloss.NewStyle().
			Width(60).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			Render(body),
	)
}

func init() {
	rootCmd.AddCommand(valueCmd)

	valueCmd.Flags().StringVar(&valueInputFile, "file", "", "load inputs from a TOML file instead of the interactive wizard")
	valueCmd.Flags().StringVar(&valueTicker, "ticker", "", "pre-fill base-year snapshot fields from the configured market data source")
	valueCmd.Flags().BoolVar(&valueSave, "save", false, "save the resulting scenario to the database")
}
