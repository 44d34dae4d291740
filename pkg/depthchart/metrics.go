package depthchart

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/auctionlab/depthchart/pkg/types"
)

var tooltipRenderCounterMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "depthchart_tooltip_renders_total",
		Help: "number of tooltips rendered by the registered series hooks",
	}, []string{"series"})

var configureCounterMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "depthchart_configure_total",
		Help: "number of chart annotation configurations",
	}, []string{"result"})

func init() {
	prometheus.MustRegister(
		tooltipRenderCounterMetrics,
		configureCounterMetrics,
	)
}

func instrumentHook(kind types.SeriesKind, hook types.TooltipHook) types.TooltipHook {
	counter := tooltipRenderCounterMetrics.WithLabelValues(kind.String())
	return func(point types.DataPoint) string {
		counter.Inc()
		return hook(point)
	}
}
