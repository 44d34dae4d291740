package numfmt

import (
	"fmt"

	"go.uber.org/multierr"
)

const (
	DefaultSignificantDigits = 6

	// DefaultScaledFractionDigits is the fraction digit count of the "###.00 a" pattern
	DefaultScaledFractionDigits = 2
)

// Suffix maps a magnitude threshold to the symbol appended to the scaled value.
type Suffix struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Symbol    string  `json:"symbol" yaml:"symbol"`
}

// SuffixTable is sorted by threshold in ascending order.
type SuffixTable []Suffix

var DefaultSuffixes = SuffixTable{
	{Threshold: 1e3, Symbol: "K"},  // thousand
	{Threshold: 1e6, Symbol: "M"},  // million
	{Threshold: 1e9, Symbol: "B"},  // billion
	{Threshold: 1e12, Symbol: "T"}, // trillion
	{Threshold: 1e15, Symbol: "P"}, // quadrillion
	{Threshold: 1e18, Symbol: "E"}, // quintillion
	{Threshold: 1e21, Symbol: "Z"}, // sextillion
	{Threshold: 1e24, Symbol: "Y"}, // septillion
}

func (t SuffixTable) Validate() (err error) {
	for i, s := range t {
		if s.Threshold <= 0 {
			err = multierr.Append(err, fmt.Errorf("suffix #%d (%s): threshold must be positive, got %v", i, s.Symbol, s.Threshold))
		}

		if s.Symbol == "" {
			err = multierr.Append(err, fmt.Errorf("suffix #%d: empty symbol", i))
		}

		if i > 0 && s.Threshold <= t[i-1].Threshold {
			err = multierr.Append(err, fmt.Errorf("suffix #%d (%s): threshold %v is not greater than the previous threshold %v", i, s.Symbol, s.Threshold, t[i-1].Threshold))
		}
	}

	return err
}

func (t SuffixTable) Copy() SuffixTable {
	return append(SuffixTable(nil), t...)
}

// FormatSpec is the number presentation config shared by the formatter and the tooltip builder.
// Create it once and pass it by value, a Formatter keeps its own copy.
type FormatSpec struct {
	SignificantDigits    int         `json:"significantDigits" yaml:"significantDigits"`
	Suffixes             SuffixTable `json:"suffixes" yaml:"suffixes"`
	ScaledFractionDigits int         `json:"scaledFractionDigits" yaml:"scaledFractionDigits"`
}

func DefaultFormatSpec() FormatSpec {
	return FormatSpec{
		SignificantDigits:    DefaultSignificantDigits,
		Suffixes:             DefaultSuffixes.Copy(),
		ScaledFractionDigits: DefaultScaledFractionDigits,
	}
}

func (s FormatSpec) Validate() (err error) {
	if s.SignificantDigits < 1 {
		err = multierr.Append(err, fmt.Errorf("significantDigits must be >= 1, got %d", s.SignificantDigits))
	}

	if s.ScaledFractionDigits < 0 {
		err = multierr.Append(err, fmt.Errorf("scaledFractionDigits must be >= 0, got %d", s.ScaledFractionDigits))
	}

	return multierr.Append(err, s.Suffixes.Validate())
}
