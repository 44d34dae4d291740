package depthchart

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionlab/depthchart/pkg/types"
)

type recordingSeries struct {
	descriptor  SeriesDescriptor
	description string
	hook        types.TooltipHook
}

func (s *recordingSeries) Kind() types.SeriesKind             { return s.descriptor.Kind }
func (s *recordingSeries) Descriptor() SeriesDescriptor       { return s.descriptor }
func (s *recordingSeries) SetDescription(description string)  { s.description = description }
func (s *recordingSeries) SetTooltipHook(h types.TooltipHook) { s.hook = h }

type recordingChart struct {
	series []Series
}

func (c *recordingChart) SetAxisTitles(x, y string) {}
func (c *recordingChart) Series() []Series          { return c.series }

func newRecordingChart() (*recordingChart, []*recordingSeries) {
	var (
		chart recordingChart
		list  []*recordingSeries
	)

	for _, d := range DefaultDescriptors() {
		s := &recordingSeries{descriptor: d}
		list = append(list, s)
		chart.series = append(chart.series, s)
	}

	return &chart, list
}

func TestInstrumentHook(t *testing.T) {
	for _, kind := range []types.SeriesKind{types.SeriesKindAsk, types.SeriesKindBid} {
		t.Run(kind.String(), func(t *testing.T) {
			counter := tooltipRenderCounterMetrics.WithLabelValues(kind.String())
			before := testutil.ToFloat64(counter)

			hook := instrumentHook(kind, func(point types.DataPoint) string {
				return "tooltip"
			})

			assert.Equal(t, "tooltip", hook(types.NewDataPoint(4.05, 12345)))
			assert.Equal(t, before+1, testutil.ToFloat64(counter))

			hook(types.DataPoint{})
			assert.Equal(t, before+2, testutil.ToFloat64(counter))
		})
	}
}

func TestConfigure_CountsResults(t *testing.T) {
	okCounter := configureCounterMetrics.WithLabelValues("ok")
	errorCounter := configureCounterMetrics.WithLabelValues("error")
	okBefore, errorBefore := testutil.ToFloat64(okCounter), testutil.ToFloat64(errorCounter)

	chart, list := newRecordingChart()
	configurator := NewConfigurator(nil)

	err := configurator.Configure(chart, Labels{BaseToken: "OWL", QuoteToken: "DAI", CurrentPrice: "4.05 DAI"})
	require.NoError(t, err)
	assert.Equal(t, okBefore+1, testutil.ToFloat64(okCounter))
	assert.Equal(t, errorBefore, testutil.ToFloat64(errorCounter))

	err = configurator.Configure(chart, Labels{QuoteToken: "DAI"})
	require.Error(t, err)
	assert.Equal(t, okBefore+1, testutil.ToFloat64(okCounter))
	assert.Equal(t, errorBefore+1, testutil.ToFloat64(errorCounter))

	err = configurator.Configure(nil, Labels{BaseToken: "OWL", QuoteToken: "DAI", CurrentPrice: "4.05 DAI"})
	require.Error(t, err)
	assert.Equal(t, errorBefore+2, testutil.ToFloat64(errorCounter))

	// the installed hooks feed the tooltip counter
	askCounter := tooltipRenderCounterMetrics.WithLabelValues(types.SeriesKindAsk.String())
	askBefore := testutil.ToFloat64(askCounter)

	ask := list[1]
	require.NotNil(t, ask.hook)
	ask.hook(types.NewDataPoint(4.05, 12345))
	assert.Equal(t, askBefore+1, testutil.ToFloat64(askCounter))
}
