package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/yhlin/fundsheet"
	"github.com/yhlin/fundsheet/date"
	"github.com/yhlin/fundsheet/renderer"
)

// fundsCmd holds the flags for the 'funds' subcommand.
type fundsCmd struct {
	sheet     string
	dividends string
	plain     bool
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "parse the sheets and display the fund table" }
func (*fundsCmd) Usage() string {
	return `fsheet funds -s <fund-sheet> [-d <dividend-sheet>]

  Parses the fund/price sheet (and optionally the dividend sheet), computes
  yield and return metrics, and displays the fund table.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sheet, "s", "funds.csv", "Path to the fund/price sheet.")
	f.StringVar(&c.dividends, "d", "", "Path to the dividend sheet. Metrics fall back to sheet values when omitted.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of styled terminal output.")
}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	funds, err := loadFunds(c.sheet, c.dividends)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	render(renderer.RenderFunds(renderer.NewFundsReport(funds)), c.plain)
	return subcommands.ExitSuccess
}

// loadFunds parses both sheets and refreshes the derived metrics. Structural
// warnings are logged, never fatal: partial data is still usable.
func loadFunds(sheetPath, dividendPath string) ([]fundsheet.Fund, error) {
	table, err := loadTable()
	if err != nil {
		return nil, err
	}
	text, err := readSheet(sheetPath)
	if err != nil {
		return nil, err
	}

	funds, err := fundsheet.BuildFunds(text, table, fundsheet.DefaultKeywords())
	switch {
	case errors.Is(err, fundsheet.ErrNoCodeColumn):
		log.Printf("warning: %v", err)
	case err != nil:
		return nil, err
	}
	if len(funds) == 0 {
		// No fund rows at all is more likely a transport problem than a
		// parsing one.
		log.Printf("warning: no fund rows in %q", sheetPath)
	}

	dividends := map[string][]fundsheet.Dividend{}
	if dividendPath != "" {
		dtext, err := readSheet(dividendPath)
		if err != nil {
			return nil, err
		}
		dividends, err = fundsheet.ParseDividends(dtext, fundsheet.DefaultKeywords())
		switch {
		case errors.Is(err, fundsheet.ErrNoDividendColumns):
			log.Printf("warning: %v (misnamed column?)", err)
		case err != nil:
			return nil, err
		}
		if len(dividends) == 0 && len(funds) > 0 {
			log.Printf("warning: dividend sheet %q yielded no entries", dividendPath)
		}
	}

	fundsheet.Refresh(funds, dividends, table, date.Today())
	return funds, nil
}
