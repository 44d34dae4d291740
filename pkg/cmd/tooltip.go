package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/auctionlab/depthchart/pkg/depthchart"
	"github.com/auctionlab/depthchart/pkg/tokens"
	"github.com/auctionlab/depthchart/pkg/tooltip"
	"github.com/auctionlab/depthchart/pkg/types"
)

func init() {
	TooltipCmd.Flags().String("kind", "ask", "the series kind, ask or bid")
	TooltipCmd.Flags().Float64("price", 0, "the hovered price (axis value)")
	TooltipCmd.Flags().Float64("volume", 0, "the hovered volume (series value)")
	TooltipCmd.Flags().Bool("plain", false, "print the tooltip without markup")
	addTokenFlags(TooltipCmd.Flags())
	RootCmd.AddCommand(TooltipCmd)
}

func addTokenFlags(flags *pflag.FlagSet) {
	flags.String("base", "", "base token symbol")
	flags.String("base-address", "", "base token address")
	flags.String("quote", "", "quote token symbol")
	flags.String("quote-address", "", "quote token address")
	flags.Int("chain", int(tokens.ChainIDMainnet), "chain id used to resolve token labels")
}

func tokensFromFlags(flags *pflag.FlagSet) (base, quote tokens.Token, chainID tokens.ChainID, err error) {
	if base.Symbol, err = flags.GetString("base"); err != nil {
		return
	}
	if base.Address, err = flags.GetString("base-address"); err != nil {
		return
	}
	if quote.Symbol, err = flags.GetString("quote"); err != nil {
		return
	}
	if quote.Address, err = flags.GetString("quote-address"); err != nil {
		return
	}

	chain, err := flags.GetInt("chain")
	return base, quote, tokens.ChainID(chain), err
}

// optionalFloat returns nil when the flag was not given on the command line.
func optionalFloat(flags *pflag.FlagSet, name string) (*float64, error) {
	if !flags.Changed(name) {
		return nil, nil
	}

	v, err := flags.GetFloat64(name)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

var TooltipCmd = &cobra.Command{
	Use:   "tooltip --kind=[ask|bid] --price=PRICE --volume=VOLUME --base=SYMBOL --quote=SYMBOL",
	Short: "print the tooltip of a hovered depth chart point",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		rawKind, err := flags.GetString("kind")
		if err != nil {
			return err
		}

		kind, err := types.ParseSeriesKind(rawKind)
		if err != nil {
			return err
		}

		var point types.DataPoint
		if point.AxisValue, err = optionalFloat(flags, "price"); err != nil {
			return err
		}
		if point.SeriesValue, err = optionalFloat(flags, "volume"); err != nil {
			return err
		}

		plain, err := flags.GetBool("plain")
		if err != nil {
			return err
		}

		base, quote, chainID, err := tokensFromFlags(flags)
		if err != nil {
			return err
		}

		userConfig, err := loadConfig()
		if err != nil {
			return err
		}

		builder, err := newBuilder(userConfig)
		if err != nil {
			return err
		}

		registry := userConfig.TokenRegistry()
		labels := depthchart.Labels{
			BaseToken:  registry.Display(base, chainID),
			QuoteToken: registry.Display(quote, chainID),

			// a tooltip never shows the current price
			CurrentPrice: depthchart.PendingCurrentPrice,
		}
		if err := labels.Validate(); err != nil {
			return err
		}

		text, err := builder.Build(tooltip.Context{
			MarketLabel: labels.Market(),
			QuoteLabel:  labels.QuoteToken,
			Point:       point,
			Kind:        kind,
		})
		if err != nil {
			return err
		}

		if plain {
			text = tooltip.PlainText(text)
		} else {
			bold := color.New(color.Bold)
			text = tooltip.RenderMarkup(text, func(s string) string {
				return bold.Sprint(s)
			})
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}
