package cmd

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/auctionlab/depthchart/pkg/style"
	"github.com/auctionlab/depthchart/pkg/tooltip"
)

func init() {
	FormatCmd.Flags().Int("digits", -1, "fixed fraction digits, defaults to the significant digit precision of each value")
	RootCmd.AddCommand(FormatCmd)
}

var FormatCmd = &cobra.Command{
	Use:   "format VALUE...",
	Short: "format numbers with magnitude suffixes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		digits, err := cmd.Flags().GetInt("digits")
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

		values, err := parseValues(args)
		if err != nil {
			return err
		}

		printFormatTable(cmd.OutOrStdout(), builder, values, digits)
		return nil
	},
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", arg)
		}

		values = append(values, v)
	}

	return values, nil
}

func printFormatTable(w io.Writer, builder *tooltip.Builder, values []float64, digits int) {
	formatter := builder.Formatter()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewDefaultTableStyle())
	t.AppendHeader(table.Row{"Value", "Decimals", "Formatted", "Tooltip"})

	for _, v := range values {
		decimals := formatter.DecimalsFor(v)
		fractionDigits := decimals
		if digits >= 0 {
			fractionDigits = digits
		}

		t.AppendRow(table.Row{
			strconv.FormatFloat(v, 'g', -1, 64),
			decimals,
			formatter.Format(v, fractionDigits),
			builder.FormatValue(v),
		})
	}

	t.Render()
}
