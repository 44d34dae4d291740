// Package numfmt renders prices and volumes for the depth chart.
//
// Values are scaled with a magnitude suffix table (K, M, B, ...) and the
// fraction precision is derived from a fixed count of significant digits.
// All arithmetic runs on decimals so that scaling never introduces binary
// floating point artifacts, e.g. 12345 / 1000 renders as 12.35, not 12.34.
package numfmt

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Formatter is safe for concurrent use, it holds no mutable state.
type Formatter struct {
	spec     FormatSpec
	divisors []decimal.Decimal
}

func NewFormatter(spec FormatSpec) (*Formatter, error) {
	if err := spec.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid format spec")
	}

	spec.Suffixes = spec.Suffixes.Copy()

	divisors := make([]decimal.Decimal, len(spec.Suffixes))
	for i, s := range spec.Suffixes {
		divisors[i] = decimal.NewFromFloat(s.Threshold)
	}

	return &Formatter{
		spec:     spec,
		divisors: divisors,
	}, nil
}

// MustNewFormatter is like NewFormatter but panics on an invalid spec.
func MustNewFormatter(spec FormatSpec) *Formatter {
	f, err := NewFormatter(spec)
	if err != nil {
		panic(err)
	}

	return f
}

var defaultFormatter = MustNewFormatter(DefaultFormatSpec())

// Default returns the formatter of DefaultFormatSpec.
func Default() *Formatter {
	return defaultFormatter
}

func (f *Formatter) Spec() FormatSpec {
	spec := f.spec
	spec.Suffixes = spec.Suffixes.Copy()
	return spec
}

// Format renders value with exactly fractionDigits digits after the decimal point,
// scaled by the largest suffix threshold that is <= |value|.
// Non-finite values are rendered as zero.
func (f *Formatter) Format(value float64, fractionDigits int) string {
	return f.FormatDecimal(toDecimal(value), fractionDigits)
}

func (f *Formatter) FormatDecimal(value decimal.Decimal, fractionDigits int) string {
	if fractionDigits < 0 {
		fractionDigits = 0
	}

	idx := f.scaleIndex(value)
	if idx < 0 {
		return value.StringFixed(int32(fractionDigits))
	}

	scaled := value.Div(f.divisors[idx])
	return scaled.StringFixed(int32(fractionDigits)) + " " + f.spec.Suffixes[idx].Symbol
}

// Scale returns the suffix Format would apply to value.
func (f *Formatter) Scale(value float64) (Suffix, bool) {
	return f.ScaleDecimal(toDecimal(value))
}

func (f *Formatter) ScaleDecimal(value decimal.Decimal) (Suffix, bool) {
	idx := f.scaleIndex(value)
	if idx < 0 {
		return Suffix{}, false
	}

	return f.spec.Suffixes[idx], true
}

// scaleIndex saturates at the last suffix, there is no upper bound.
func (f *Formatter) scaleIndex(value decimal.Decimal) int {
	abs := value.Abs()
	idx := -1
	for i, divisor := range f.divisors {
		if abs.LessThan(divisor) {
			break
		}

		idx = i
	}

	return idx
}

// RoundSignificant rounds value to the configured count of significant digits.
func (f *Formatter) RoundSignificant(value float64) decimal.Decimal {
	return RoundSignificant(toDecimal(value), f.spec.SignificantDigits)
}

// DecimalsFor returns the number of fraction digits left after rounding value
// to the configured count of significant digits. Integers yield 0.
func (f *Formatter) DecimalsFor(value float64) int {
	return FractionDigits(f.RoundSignificant(value))
}

// RoundSignificant rounds d half away from zero to digits significant digits.
func RoundSignificant(d decimal.Decimal, digits int) decimal.Decimal {
	if d.IsZero() || digits < 1 {
		return d
	}

	// exponent of the most significant digit, 123.4 -> 2, 0.00012 -> -4
	magnitude := d.NumDigits() + int(d.Exponent()) - 1
	return d.Round(int32(digits - 1 - magnitude))
}

// FractionDigits counts the fraction digits of d without trailing zeros.
func FractionDigits(d decimal.Decimal) int {
	s := d.String()
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return 0
	}

	return len(strings.TrimRight(s[idx+1:], "0"))
}

func toDecimal(value float64) decimal.Decimal {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(value)
}
