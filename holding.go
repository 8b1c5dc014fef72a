package fundsheet

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yhlin/fundsheet/date"
	"gopkg.in/yaml.v2"
)

// TradingUnit is the standard board lot size. Positions are ideally
// multiples of it; odd lots are legal and only flagged.
const TradingUnit = 1000

// Lot is a single purchase of an instrument. Lots are owned by the caller,
// outlive any parse, and are the only externally mutated entities.
type Lot struct {
	Code   string    `yaml:"code" json:"code"`
	Shares int       `yaml:"shares" json:"shares"`
	Price  float64   `yaml:"price" json:"price"`
	Date   date.Date `yaml:"date" json:"date"`
}

// Cost is the total cost of the lot, shares times price per share.
func (l Lot) Cost() float64 {
	return decimal.NewFromInt(int64(l.Shares)).Mul(decimal.NewFromFloat(l.Price)).InexactFloat64()
}

// OddLot reports whether the lot breaks the standard trading unit.
func (l Lot) OddLot() bool { return l.Shares%TradingUnit != 0 }

// Holding aggregates the lots of one instrument. A holding with no lots does
// not exist: removing the last lot removes the position.
type Holding struct {
	Code string
	Lots []Lot
}

// Shares is the total number of shares held.
func (h Holding) Shares() int {
	var n int
	for _, l := range h.Lots {
		n += l.Shares
	}
	return n
}

// Cost is the total invested cost basis of the holding.
func (h Holding) Cost() float64 {
	sum := decimal.Zero
	for _, l := range h.Lots {
		sum = sum.Add(decimal.NewFromFloat(l.Cost()))
	}
	return sum.InexactFloat64()
}

// GroupLots groups lots into one holding per code, ordered by code
// ascending. Lots without a code or without positive shares are skipped.
func GroupLots(lots []Lot) []Holding {
	byCode := make(map[string][]Lot)
	for _, l := range lots {
		if l.Code == "" || l.Shares <= 0 {
			continue
		}
		byCode[l.Code] = append(byCode[l.Code], l)
	}
	holdings := make([]Holding, 0, len(byCode))
	for code, ls := range byCode {
		holdings = append(holdings, Holding{Code: code, Lots: ls})
	}
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Code < holdings[j].Code })
	return holdings
}

// LoadLots reads a yaml list of lots, the persistence format of the holdings
// file the CLI reads.
func LoadLots(r io.Reader) ([]Lot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings: %w", err)
	}
	var lots []Lot
	if err := yaml.Unmarshal(data, &lots); err != nil {
		return nil, fmt.Errorf("cannot parse holdings: %w", err)
	}
	return lots, nil
}

// EncodeLots writes lots back in the holdings file format.
func EncodeLots(w io.Writer, lots []Lot) error {
	data, err := yaml.Marshal(lots)
	if err != nil {
		return fmt.Errorf("cannot encode holdings: %w", err)
	}
	_, err = w.Write(data)
	return err
}
