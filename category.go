package fundsheet

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v2"
)

// Category is the payout grouping of an instrument: one of three quarterly
// phase offsets, monthly, or bond. It is fixed per code by the
// classification table; codes outside the table are not funds.
type Category int

const (
	Unclassified Category = iota
	QuarterlyJan          // pays Jan/Apr/Jul/Oct
	QuarterlyFeb          // pays Feb/May/Aug/Nov
	QuarterlyMar          // pays Mar/Jun/Sep/Dec
	Monthly
	Bond
)

var categoryNames = map[Category]string{
	QuarterlyJan: "quarterly-jan",
	QuarterlyFeb: "quarterly-feb",
	QuarterlyMar: "quarterly-mar",
	Monthly:      "monthly",
	Bond:         "bond",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unclassified"
}

func parseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if s == name {
			return c, nil
		}
	}
	return Unclassified, fmt.Errorf("unknown category %q", s)
}

// Table is the immutable classification of instrument codes. It is explicit
// configuration passed into the builder, never a hidden module-level
// constant, so tests can substitute synthetic code sets.
type Table struct {
	categories map[string]Category
	// Bond instruments carry their own payout cycle, used by the projection
	// engine and by the forward-yield period count.
	bondCycles map[string]Category
}

// NewTable builds a Table from explicit maps. bondCycles assigns a payout
// cycle (one of the quarterly phases or Monthly) to bond codes; bonds without
// an entry default to QuarterlyJan.
func NewTable(categories map[string]Category, bondCycles map[string]Category) *Table {
	t := &Table{
		categories: make(map[string]Category, len(categories)),
		bondCycles: make(map[string]Category, len(bondCycles)),
	}
	for code, c := range categories {
		t.categories[code] = c
	}
	for code, c := range bondCycles {
		t.bondCycles[code] = c
	}
	return t
}

// Category returns the payout grouping for a code, and whether the code is a
// known instrument at all.
func (t *Table) Category(code string) (Category, bool) {
	c, ok := t.categories[code]
	return c, ok
}

// Cycle returns the payout cycle used for calendar distribution: the
// category itself, with bonds reclassified through the bond-cycle lookup.
func (t *Table) Cycle(code string) Category {
	c, ok := t.categories[code]
	if !ok {
		return Unclassified
	}
	if c != Bond {
		return c
	}
	if cycle, ok := t.bondCycles[code]; ok {
		return cycle
	}
	return QuarterlyJan
}

// MonthlyPayer reports whether the code pays every month: the monthly
// category, or a bond whose cycle is monthly. Used to pick the forward-yield
// period count (12 instead of 4).
func (t *Table) MonthlyPayer(code string) bool {
	return t.Cycle(code) == Monthly
}

// Codes returns all known instrument codes in ascending order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.categories))
	for code := range t.categories {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// tableFile is the yaml shape of a classification table.
type tableFile struct {
	Categories map[string]string `yaml:"categories"`
	BondCycles map[string]string `yaml:"bond-cycles"`
}

// ParseTable reads a classification table from its yaml form.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("cannot read classification table: %w", err)
	}
	categories := make(map[string]Category, len(f.Categories))
	for code, name := range f.Categories {
		c, err := parseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("code %q: %w", code, err)
		}
		categories[code] = c
	}
	bondCycles := make(map[string]Category, len(f.BondCycles))
	for code, name := range f.BondCycles {
		c, err := parseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("bond cycle for %q: %w", code, err)
		}
		if c == Bond {
			return nil, fmt.Errorf("bond cycle for %q cannot be %q", code, name)
		}
		bondCycles[code] = c
	}
	return NewTable(categories, bondCycles), nil
}

//go:embed categories.yaml
var defaultTableYAML []byte

// DefaultTable returns the built-in classification of the known instrument
// codes. The yaml source is embedded so callers without their own table get
// a working one.
func DefaultTable() *Table {
	t, err := ParseTable(defaultTableYAML)
	if err != nil {
		panic("embedded categories.yaml is invalid: " + err.Error())
	}
	return t
}
