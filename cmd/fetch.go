package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yhlin/fundsheet/fetch"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	out      string
	jsonPath string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download a published sheet to a local file" }
func (*fetchCmd) Usage() string {
	return `fsheet fetch [-o <file>] [-json <path>] <url> [fallback-url...]

  Downloads the sheet text from the first URL that answers, trying fallback
  URLs (e.g. a proxy mirror) in order. With -json the response is treated as
  a JSON export envelope and the sheet text extracted at the given jsonpath,
  e.g. -json '$.export.csv'.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Write the sheet to this file instead of stdout.")
	f.StringVar(&c.jsonPath, "json", "", "Extract the sheet text from a JSON response at this jsonpath.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	urls := f.Args()
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one URL must be given.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	client := fetch.New()
	var text string
	var err error
	if c.jsonPath != "" {
		text, err = client.JSONText(ctx, urls[0], c.jsonPath)
	} else {
		text, err = client.Text(ctx, urls...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.out == "" {
		fmt.Print(text)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.out, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved %d bytes to %s\n", len(text), c.out)
	return subcommands.ExitSuccess
}
