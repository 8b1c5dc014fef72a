// Package cmd implements the CLI application over the fundsheet core.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/yhlin/fundsheet"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fundsCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&fetchCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tablePath = flag.String("table", "", "Path to a classification table (yaml). The embedded default is used when empty.")

// loadTable resolves the classification table: the --table file when given,
// the embedded default otherwise.
func loadTable() (*fundsheet.Table, error) {
	if *tablePath == "" {
		return fundsheet.DefaultTable(), nil
	}
	data, err := os.ReadFile(*tablePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read table %q: %w", *tablePath, err)
	}
	return fundsheet.ParseTable(data)
}

// render prints a markdown report, styled for the terminal unless plain
// output is requested.
func render(md string, plain bool) {
	if !plain {
		if styled, err := glamour.Render(md, "auto"); err == nil {
			fmt.Print(styled)
			return
		}
	}
	fmt.Print(md)
}

// readSheet loads a sheet file for parsing.
func readSheet(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read sheet %q: %w", path, err)
	}
	return string(data), nil
}
