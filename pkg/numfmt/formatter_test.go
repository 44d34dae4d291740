package numfmt

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	f := Default()

	tests := []struct {
		name   string
		value  float64
		digits int
		want   string
	}{
		{name: "zero", value: 0, digits: 2, want: "0.00"},
		{name: "below threshold", value: 999, digits: 2, want: "999.00"},
		{name: "below threshold no fraction", value: 999, digits: 0, want: "999"},
		{name: "thousand boundary", value: 1000, digits: 2, want: "1.00 K"},
		{name: "thousands half up", value: 12345, digits: 2, want: "12.35 K"},
		{name: "thousands no fraction", value: 12345, digits: 0, want: "12 K"},
		{name: "rounds within suffix", value: 999999, digits: 2, want: "1000.00 K"},
		{name: "million", value: 1_000_000, digits: 1, want: "1.0 M"},
		{name: "billion", value: 2.5e9, digits: 2, want: "2.50 B"},
		{name: "trillion", value: 7.125e12, digits: 2, want: "7.13 T"},
		{name: "quadrillion", value: 1e15, digits: 0, want: "1 P"},
		{name: "quintillion", value: 3e18, digits: 0, want: "3 E"},
		{name: "sextillion", value: 4e21, digits: 0, want: "4 Z"},
		{name: "septillion", value: 5e24, digits: 0, want: "5 Y"},
		{name: "saturates at the top suffix", value: 1e27, digits: 0, want: "1000 Y"},
		{name: "negative", value: -12345, digits: 2, want: "-12.35 K"},
		{name: "small values are not scaled", value: 0.000123457, digits: 9, want: "0.000123457"},
		{name: "small values with fixed digits", value: 0.5, digits: 3, want: "0.500"},
		{name: "negative digits are clamped", value: 4.05, digits: -1, want: "4"},
		{name: "nan", value: math.NaN(), digits: 2, want: "0.00"},
		{name: "inf", value: math.Inf(1), digits: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.value, tt.digits))
		})
	}
}

func TestFormatter_FormatThousandsRange(t *testing.T) {
	f := Default()
	for _, v := range []float64{1000, 1000.5, 1234.5678, 54321, 99999.99, 500000.125, 999999.999} {
		for digits := 0; digits <= 4; digits++ {
			for _, sign := range []float64{1, -1} {
				value := v * sign
				out := f.Format(value, digits)
				require.True(t, strings.HasSuffix(out, " K"), "%v formatted as %q", value, out)

				want := decimal.NewFromFloat(value).Shift(-3).StringFixed(int32(digits))
				assert.Equal(t, want, strings.TrimSuffix(out, " K"))

				// same arguments, same output
				assert.Equal(t, out, f.Format(value, digits))
			}
		}
	}
}

func TestFormatter_Scale(t *testing.T) {
	f := Default()

	_, ok := f.Scale(999.999)
	assert.False(t, ok)

	s, ok := f.Scale(-1000)
	assert.True(t, ok)
	assert.Equal(t, "K", s.Symbol)

	s, ok = f.Scale(1e30)
	assert.True(t, ok)
	assert.Equal(t, "Y", s.Symbol)
}

func TestFormatter_CustomSpec(t *testing.T) {
	f, err := NewFormatter(FormatSpec{
		SignificantDigits: 4,
		Suffixes: SuffixTable{
			{Threshold: 1e3, Symbol: "k"},
			{Threshold: 1e6, Symbol: "m"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "1.50 m", f.Format(1.5e6, 2))
	assert.Equal(t, "1500.00 m", f.Format(1.5e9, 2))
	assert.Equal(t, 2, f.DecimalsFor(12.345678))
}

func TestNewFormatter_InvalidSpec(t *testing.T) {
	_, err := NewFormatter(FormatSpec{
		SignificantDigits: 0,
		Suffixes: SuffixTable{
			{Threshold: 1e6, Symbol: "M"},
			{Threshold: 1e3, Symbol: "K"},
			{Threshold: 0, Symbol: ""},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "significantDigits")
	assert.Contains(t, err.Error(), "not greater than the previous threshold")
	assert.Contains(t, err.Error(), "empty symbol")
}

func TestFormatter_SpecIsCopied(t *testing.T) {
	spec := DefaultFormatSpec()
	f := MustNewFormatter(spec)

	spec.Suffixes[0].Symbol = "X"
	assert.Equal(t, "1.00 K", f.Format(1000, 2))

	got := f.Spec()
	got.Suffixes[0].Symbol = "X"
	assert.Equal(t, "1.00 K", f.Format(1000, 2))
}

func TestFormatter_DecimalsFor(t *testing.T) {
	f := Default()

	tests := []struct {
		value float64
		want  int
	}{
		{value: 0, want: 0},
		{value: 100, want: 0},
		{value: 12345, want: 0},
		{value: 1234567.891, want: 0},
		{value: 4.05, want: 2},
		{value: 1500.5, want: 1},
		{value: 1.23456789, want: 5},
		{value: 0.1, want: 1},
		{value: 0.0001234567, want: 9},
		{value: -0.0001234567, want: 9},
		{value: 0.999999999, want: 0},
		{value: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.value, 'g', -1, 64), func(t *testing.T) {
			assert.Equal(t, tt.want, f.DecimalsFor(tt.value))
		})
	}
}

func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		value  string
		digits int
		want   string
	}{
		{value: "1234567", digits: 6, want: "1234570"},
		{value: "0.0001234567", digits: 6, want: "0.000123457"},
		{value: "999999.5", digits: 6, want: "1000000"},
		{value: "-4.05", digits: 2, want: "-4.1"},
		{value: "0", digits: 6, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d := decimal.RequireFromString(tt.value)
			got := RoundSignificant(d, tt.digits)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got.String())
		})
	}
}

func TestFractionDigits(t *testing.T) {
	assert.Equal(t, 0, FractionDigits(decimal.RequireFromString("100.000")))
	assert.Equal(t, 2, FractionDigits(decimal.RequireFromString("4.0500")))
	assert.Equal(t, 0, FractionDigits(decimal.Zero))
}
