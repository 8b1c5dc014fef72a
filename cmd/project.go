package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yhlin/fundsheet"
	"github.com/yhlin/fundsheet/date"
	"github.com/yhlin/fundsheet/renderer"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	sheet     string
	dividends string
	holdings  string
	plain     bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "display the 12-month portfolio projection" }
func (*projectCmd) Usage() string {
	return `fsheet project -H <holdings> -s <fund-sheet> [-d <dividend-sheet>]

  Distributes each holding's estimated dividends over the payout calendar
  and projects market value and total assets over the next 12 months.

  The holdings file is a yaml list of lots:

    - code: "0056"
      shares: 2000
      price: 33.1
      date: 2024-05-02
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdings, "H", "holdings.yaml", "Path to the holdings file (yaml lots).")
	f.StringVar(&c.sheet, "s", "funds.csv", "Path to the fund/price sheet.")
	f.StringVar(&c.dividends, "d", "", "Path to the dividend sheet.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of styled terminal output.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	hf, err := os.Open(c.holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open holdings %q: %v\n", c.holdings, err)
		return subcommands.ExitFailure
	}
	lots, err := fundsheet.LoadLots(hf)
	hf.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	funds, err := loadFunds(c.sheet, c.dividends)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	table, err := loadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p := fundsheet.Project(fundsheet.GroupLots(lots), funds, table, date.Today())
	render(renderer.RenderProjection(renderer.NewProjectionReport(p)), c.plain)
	return subcommands.ExitSuccess
}
