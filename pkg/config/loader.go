package config

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/auctionlab/depthchart/pkg/depthchart/render"
	"github.com/auctionlab/depthchart/pkg/numfmt"
	"github.com/auctionlab/depthchart/pkg/style"
	"github.com/auctionlab/depthchart/pkg/tokens"
	"github.com/auctionlab/depthchart/pkg/types"
)

type FormatConfig struct {
	SignificantDigits    int                `json:"significantDigits,omitempty" yaml:"significantDigits,omitempty"`
	ScaledFractionDigits *int               `json:"scaledFractionDigits,omitempty" yaml:"scaledFractionDigits,omitempty"`
	Suffixes             numfmt.SuffixTable `json:"suffixes,omitempty" yaml:"suffixes,omitempty"`
}

type ColorConfig struct {
	Background   string `json:"background,omitempty" yaml:"background,omitempty"`
	Foreground   string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Bid          string `json:"bid,omitempty" yaml:"bid,omitempty"`
	Ask          string `json:"ask,omitempty" yaml:"ask,omitempty"`
	NewOrder     string `json:"newOrder,omitempty" yaml:"newOrder,omitempty"`
	CurrentPrice string `json:"currentPrice,omitempty" yaml:"currentPrice,omitempty"`
}

type ChartConfig struct {
	Title        string       `json:"title,omitempty" yaml:"title,omitempty"`
	Width        int          `json:"width,omitempty" yaml:"width,omitempty"`
	Height       int          `json:"height,omitempty" yaml:"height,omitempty"`
	ExtraPadding *float64     `json:"extraPadding,omitempty" yaml:"extraPadding,omitempty"`
	Colors       *ColorConfig `json:"colors,omitempty" yaml:"colors,omitempty"`
}

type Config struct {
	Format       *FormatConfig        `json:"format,omitempty" yaml:"format,omitempty"`
	Chart        *ChartConfig         `json:"chart,omitempty" yaml:"chart,omitempty"`
	NativeTokens []tokens.NativeToken `json:"nativeTokens,omitempty" yaml:"nativeTokens,omitempty"`
}

func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	return LoadBytes(data)
}

func LoadBytes(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "can not parse config")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &config, nil
}

// FormatSpec merges the format section over numfmt.DefaultFormatSpec.
func (c *Config) FormatSpec() numfmt.FormatSpec {
	spec := numfmt.DefaultFormatSpec()
	if c == nil || c.Format == nil {
		return spec
	}

	if c.Format.SignificantDigits != 0 {
		spec.SignificantDigits = c.Format.SignificantDigits
	}

	if c.Format.ScaledFractionDigits != nil {
		spec.ScaledFractionDigits = *c.Format.ScaledFractionDigits
	}

	if len(c.Format.Suffixes) > 0 {
		spec.Suffixes = c.Format.Suffixes.Copy()
	}

	return spec
}

// RenderOptions merges the chart section over render.DefaultOptions.
func (c *Config) RenderOptions() render.Options {
	options := render.DefaultOptions()
	if c == nil || c.Chart == nil {
		return options
	}

	chart := c.Chart
	if chart.Title != "" {
		options.Title = chart.Title
	}

	if chart.Width > 0 {
		options.Width = chart.Width
	}

	if chart.Height > 0 {
		options.Height = chart.Height
	}

	if chart.ExtraPadding != nil {
		options.ExtraPadding = *chart.ExtraPadding
	}

	if colors := chart.Colors; colors != nil {
		if colors.Background != "" {
			options.Palette.Background = style.Color(colors.Background)
		}

		if colors.Foreground != "" {
			options.Palette.Foreground = style.Color(colors.Foreground)
		}

		for kind, hex := range map[types.SeriesKind]string{
			types.SeriesKindBid:          colors.Bid,
			types.SeriesKindAsk:          colors.Ask,
			types.SeriesKindNewOrder:     colors.NewOrder,
			types.SeriesKindCurrentPrice: colors.CurrentPrice,
		} {
			if hex != "" {
				options.Palette.Series[kind] = style.Color(hex)
			}
		}
	}

	return options
}

func (c *Config) TokenRegistry() *tokens.Registry {
	if c == nil {
		return tokens.NewRegistry()
	}

	return tokens.NewRegistry(c.NativeTokens...)
}

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

func (c *Config) Validate() (err error) {
	err = multierr.Append(err, c.FormatSpec().Validate())

	if chart := c.Chart; chart != nil {
		if chart.Width < 0 || chart.Height < 0 {
			err = multierr.Append(err, errors.Errorf("chart size can not be negative: %dx%d", chart.Width, chart.Height))
		}

		if chart.ExtraPadding != nil && *chart.ExtraPadding < 0 {
			err = multierr.Append(err, errors.Errorf("chart extraPadding can not be negative: %v", *chart.ExtraPadding))
		}

		if colors := chart.Colors; colors != nil {
			for name, hex := range map[string]string{
				"background":   colors.Background,
				"foreground":   colors.Foreground,
				"bid":          colors.Bid,
				"ask":          colors.Ask,
				"newOrder":     colors.NewOrder,
				"currentPrice": colors.CurrentPrice,
			} {
				if hex != "" && !hexColorPattern.MatchString(hex) {
					err = multierr.Append(err, errors.Errorf("chart color %s: invalid hex color %q", name, hex))
				}
			}
		}
	}

	for i, t := range c.NativeTokens {
		if t.ChainID == 0 || t.WrappedAddress == "" || t.Symbol == "" {
			err = multierr.Append(err, errors.Errorf("nativeTokens #%d: chainId, wrappedAddress and symbol are required", i))
		}
	}

	return err
}
