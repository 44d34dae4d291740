// Package depthchart wires the number formatter and the tooltip builder into
// an auction depth chart: axis titles, legend descriptions and the per point
// tooltip hooks of the ask and bid series.
package depthchart

//go:generate mockgen -destination=mocks/mock_chart.go -package=mocks . Chart,Series

import (
	"github.com/auctionlab/depthchart/pkg/types"
)

// Series is one plotted line owned by the chart backend.
type Series interface {
	Kind() types.SeriesKind
	Descriptor() SeriesDescriptor

	// SetDescription replaces the rendered legend description.
	SetDescription(description string)

	// SetTooltipHook registers the hook the backend calls on every hover over a point of this series.
	SetTooltipHook(hook types.TooltipHook)
}

// Chart is the chart backend the configurator annotates.
type Chart interface {
	SetAxisTitles(x, y string)

	// Series returns the plotted series in plotting order.
	Series() []Series
}

// ExpectedSeriesOrder is the series layout every configured chart must have.
var ExpectedSeriesOrder = []types.SeriesKind{
	types.SeriesKindBid,
	types.SeriesKindAsk,
	types.SeriesKindNewOrder,
	types.SeriesKindCurrentPrice,
}
