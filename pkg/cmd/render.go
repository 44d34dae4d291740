package cmd

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/auctionlab/depthchart/pkg/config"
	"github.com/auctionlab/depthchart/pkg/depthchart"
	"github.com/auctionlab/depthchart/pkg/depthchart/render"
	"github.com/auctionlab/depthchart/pkg/style"
	"github.com/auctionlab/depthchart/pkg/tokens"
	"github.com/auctionlab/depthchart/pkg/tooltip"
	"github.com/auctionlab/depthchart/pkg/types"
)

func init() {
	RenderCmd.Flags().String("input", "", "the depth data json file")
	RenderCmd.Flags().String("output", "depth.png", "the png file to write")
	RenderCmd.Flags().Float64("hover", 0, "annotate the bid or ask point nearest to this price")
	RootCmd.AddCommand(RenderCmd)
}

// DepthData is the input of the render command.
type DepthData struct {
	ChainID      tokens.ChainID `json:"chainId"`
	BaseToken    tokens.Token   `json:"baseToken"`
	QuoteToken   tokens.Token   `json:"quoteToken"`
	CurrentPrice *float64       `json:"currentPrice,omitempty"`
	Bids         []render.Point `json:"bids"`
	Asks         []render.Point `json:"asks"`
	NewOrder     []render.Point `json:"newOrder,omitempty"`
}

func loadDepthData(file string) (*DepthData, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var depth DepthData
	if err := json.Unmarshal(data, &depth); err != nil {
		return nil, errors.Wrapf(err, "can not decode depth data %s", file)
	}

	return &depth, nil
}

var RenderCmd = &cobra.Command{
	Use:   "render --input=depth.json [--output=depth.png] [--hover=PRICE]",
	Short: "render the depth chart of an auction",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		if input == "" {
			return errors.New("--input is required")
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		hoverPrice, err := optionalFloat(cmd.Flags(), "hover")
		if err != nil {
			return err
		}

		userConfig, err := loadConfig()
		if err != nil {
			return err
		}

		depth, err := loadDepthData(input)
		if err != nil {
			return err
		}

		graph, err := buildDepthChart(userConfig, depth)
		if err != nil {
			return err
		}

		if hoverPrice != nil {
			text, err := graph.HoverAt(*hoverPrice)
			if err != nil {
				return err
			}

			log.Infof("hover at %v:\n%s", *hoverPrice, tooltip.PlainText(text))
		}

		if err := writeChart(graph, output); err != nil {
			return err
		}

		printLegend(cmd.OutOrStdout(), graph.Legend())
		log.Infof("depth chart is written to %s", output)
		return nil
	},
}

func buildDepthChart(userConfig *config.Config, depth *DepthData) (*render.Chart, error) {
	builder, err := newBuilder(userConfig)
	if err != nil {
		return nil, err
	}

	graph := render.NewChart(builder.Formatter(), userConfig.RenderOptions())

	registry := userConfig.TokenRegistry()
	labels := depthchart.Labels{
		BaseToken:  registry.Display(depth.BaseToken, depth.ChainID),
		QuoteToken: registry.Display(depth.QuoteToken, depth.ChainID),
	}

	var maxVolume float64
	for kind, points := range map[types.SeriesKind][]render.Point{
		types.SeriesKindBid:      depth.Bids,
		types.SeriesKindAsk:      depth.Asks,
		types.SeriesKindNewOrder: depth.NewOrder,
	} {
		s, _ := graph.SeriesOf(kind)
		s.SetPoints(points)

		for _, p := range points {
			if p.Volume > maxVolume {
				maxVolume = p.Volume
			}
		}
	}

	labels.CurrentPrice = depthchart.PendingCurrentPrice
	if depth.CurrentPrice != nil {
		price := *depth.CurrentPrice
		labels.CurrentPrice = builder.CurrentPriceDisplay(price, labels.QuoteToken)

		s, _ := graph.SeriesOf(types.SeriesKindCurrentPrice)
		s.SetPoints([]render.Point{{Price: price, Volume: 0}, {Price: price, Volume: maxVolume}})
	}

	if err := depthchart.NewConfigurator(builder).Configure(graph, labels); err != nil {
		return nil, err
	}

	return graph, nil
}

func writeChart(graph *render.Chart, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}

	if err := graph.Render(f); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "can not render depth chart")
	}

	return errors.Wrapf(f.Close(), "can not close %s", output)
}

func printLegend(w io.Writer, items []render.LegendItem) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewDefaultTableStyle())
	t.AppendHeader(table.Row{"Series", "Label", "Description"})
	for _, item := range items {
		t.AppendRow(table.Row{item.Kind, item.Label, item.Description})
	}
	t.Render()
}
