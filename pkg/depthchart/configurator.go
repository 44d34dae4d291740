package depthchart

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/auctionlab/depthchart/pkg/tooltip"
	"github.com/auctionlab/depthchart/pkg/types"
)

var log = logrus.WithField("component", "depthchart")

const PriceAxisTitle = "Price"

func VolumeAxisTitle(quoteLabel string) string {
	return fmt.Sprintf("Volume (%s)", quoteLabel)
}

// Labels are the display strings resolved by the caller before configuring a chart.
type Labels struct {
	BaseToken  string
	QuoteToken string

	// CurrentPrice is the pre-formatted current price, e.g. "4.05 DAI"
	CurrentPrice string
}

// Market returns the "<quote>-<base>" market label.
func (l Labels) Market() string {
	return l.QuoteToken + "-" + l.BaseToken
}

func (l Labels) Validate() (err error) {
	if l.BaseToken == "" {
		err = multierr.Append(err, errors.Wrap(ErrMissingLabel, "base token"))
	}

	if l.QuoteToken == "" {
		err = multierr.Append(err, errors.Wrap(ErrMissingLabel, "quote token"))
	}

	if l.CurrentPrice == "" {
		err = multierr.Append(err, errors.Wrap(ErrMissingLabel, "current price"))
	}

	return err
}

type Configurator struct {
	builder *tooltip.Builder
}

func NewConfigurator(builder *tooltip.Builder) *Configurator {
	if builder == nil {
		builder = tooltip.NewBuilder(nil)
	}

	return &Configurator{builder: builder}
}

// Configure annotates the chart. The series layout is checked before anything
// is written to the chart, a mismatching chart is rejected untouched.
// Calling Configure again refreshes the labels and the current price description.
func (c *Configurator) Configure(chart Chart, labels Labels) (err error) {
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		configureCounterMetrics.WithLabelValues(result).Inc()
	}()

	if err := labels.Validate(); err != nil {
		return err
	}

	if chart == nil {
		return errors.Wrap(ErrMissingSeries, "nil chart")
	}

	series, err := CheckSeries(chart.Series())
	if err != nil {
		return err
	}

	bidSeries, askSeries, priceSeries := series[0], series[1], series[3]

	priceTemplate := priceSeries.Descriptor().Description
	if priceTemplate == nil || !priceTemplate.HasCurrentPriceSlot() {
		return ErrNoPriceSlot
	}

	description, err := priceTemplate.Render(DescriptionSlots{CurrentPrice: labels.CurrentPrice})
	if err != nil {
		return err
	}

	market := labels.Market()
	askHook, err := c.builder.Hook(types.SeriesKindAsk, market, labels.QuoteToken)
	if err != nil {
		return err
	}

	bidHook, err := c.builder.Hook(types.SeriesKindBid, market, labels.QuoteToken)
	if err != nil {
		return err
	}

	chart.SetAxisTitles(PriceAxisTitle, VolumeAxisTitle(labels.QuoteToken))
	priceSeries.SetDescription(description)
	askSeries.SetTooltipHook(instrumentHook(types.SeriesKindAsk, askHook))
	bidSeries.SetTooltipHook(instrumentHook(types.SeriesKindBid, bidHook))

	log.WithFields(logrus.Fields{
		"market":       market,
		"currentPrice": labels.CurrentPrice,
	}).Debugf("depth chart configured")
	return nil
}

// CheckSeries verifies the series follow ExpectedSeriesOrder.
func CheckSeries(series []Series) ([]Series, error) {
	if len(series) < len(ExpectedSeriesOrder) {
		return nil, errors.Wrapf(ErrMissingSeries, "expected %d series, got %d", len(ExpectedSeriesOrder), len(series))
	}

	if len(series) > len(ExpectedSeriesOrder) {
		return nil, errors.Wrapf(ErrSeriesOrder, "expected %d series, got %d", len(ExpectedSeriesOrder), len(series))
	}

	for i, kind := range ExpectedSeriesOrder {
		if series[i] == nil {
			return nil, errors.Wrapf(ErrMissingSeries, "series #%d (%s) is nil", i, kind)
		}

		if got := series[i].Kind(); got != kind {
			return nil, errors.Wrapf(ErrSeriesOrder, "series #%d: expected %s, got %s", i, kind, got)
		}
	}

	return series, nil
}
