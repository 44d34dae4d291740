package render

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/auctionlab/depthchart/pkg/depthchart"
	"github.com/auctionlab/depthchart/pkg/style"
	"github.com/auctionlab/depthchart/pkg/types"
)

// Series is one line of the depth chart, its state is guarded by the chart lock.
type Series struct {
	chart *Chart

	descriptor  depthchart.SeriesDescriptor
	description string
	hook        types.TooltipHook
	points      []Point
}

func (s *Series) Kind() types.SeriesKind {
	return s.descriptor.Kind
}

func (s *Series) Descriptor() depthchart.SeriesDescriptor {
	return s.descriptor
}

func (s *Series) SetDescription(description string) {
	s.chart.mu.Lock()
	s.description = description
	s.chart.mu.Unlock()
}

func (s *Series) Description() string {
	s.chart.mu.Lock()
	defer s.chart.mu.Unlock()
	return s.description
}

func (s *Series) SetTooltipHook(hook types.TooltipHook) {
	s.chart.mu.Lock()
	s.hook = hook
	s.chart.mu.Unlock()
}

// SetPoints replaces the plotted points, non-finite points are dropped.
func (s *Series) SetPoints(points []Point) {
	var filtered []Point
	for _, p := range points {
		if !isFinite(p.Price) || !isFinite(p.Volume) {
			log.Warnf("dropping non-finite point %+v of the %s series", p, s.descriptor.Kind)
			continue
		}

		filtered = append(filtered, p)
	}

	sorted := sortPoints(filtered)

	s.chart.mu.Lock()
	s.points = sorted
	s.chart.mu.Unlock()
}

func (s *Series) SetValues(prices, volumes []float64) error {
	if len(prices) != len(volumes) {
		return errors.Wrapf(ErrMismatchLength, "%s series: %d prices, %d volumes", s.descriptor.Kind, len(prices), len(volumes))
	}

	points := make([]Point, len(prices))
	for i := range prices {
		points[i] = Point{Price: prices[i], Volume: volumes[i]}
	}

	s.SetPoints(points)
	return nil
}

func (s *Series) Points() []Point {
	s.chart.mu.Lock()
	defer s.chart.mu.Unlock()
	return append([]Point(nil), s.points...)
}

// values returns the plotted coordinates, the bid series is drawn as a step line.
func (s *Series) values() (xs, ys []float64) {
	step := s.descriptor.Kind == types.SeriesKindBid
	for i, p := range s.points {
		if step && i > 0 {
			xs = append(xs, p.Price)
			ys = append(ys, s.points[i-1].Volume)
		}

		xs = append(xs, p.Price)
		ys = append(ys, p.Volume)
	}

	return xs, ys
}

func (s *Series) style(palette style.Palette) chart.Style {
	color := palette.SeriesColor(s.descriptor.Kind)

	st := chart.Style{
		StrokeColor: color,
		StrokeWidth: 1,
		FillColor:   color.WithAlpha(25),
	}

	if s.descriptor.Kind == types.SeriesKindCurrentPrice {
		st.StrokeWidth = 2
		st.StrokeDashArray = []float64{3, 3}
	}

	return st
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func joinLines(s, sep string) string {
	return strings.Join(strings.Split(s, "\n"), sep)
}
