// Package render is a go-chart backed depth chart. It implements the
// depthchart.Chart interface so the configurator can annotate it, dispatches
// hovers to the registered tooltip hooks and renders the result as PNG.
package render

import (
	"io"
	"math"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/auctionlab/depthchart/pkg/depthchart"
	"github.com/auctionlab/depthchart/pkg/numfmt"
	"github.com/auctionlab/depthchart/pkg/style"
	"github.com/auctionlab/depthchart/pkg/tooltip"
	"github.com/auctionlab/depthchart/pkg/types"
)

var log = logrus.WithField("component", "render")

var (
	ErrNoData         = errors.New("depth chart has no data to render")
	ErrUnknownSeries  = errors.New("unknown series")
	ErrNoTooltipHook  = errors.New("series has no tooltip hook")
	ErrNoSnapSeries   = errors.New("no bid or ask point to snap to")
	ErrMismatchLength = errors.New("price and volume length mismatch")
)

var (
	_ depthchart.Chart  = &Chart{}
	_ depthchart.Series = &Series{}
)

type Options struct {
	Title   string
	Width   int
	Height  int
	Palette style.Palette

	// ExtraPadding widens the price axis on both sides, relative to the price span
	ExtraPadding float64
}

func DefaultOptions() Options {
	return Options{
		Width:        1024,
		Height:       512,
		Palette:      style.DefaultPalette(),
		ExtraPadding: 0.02,
	}
}

type hover struct {
	kind  types.SeriesKind
	point types.DataPoint
	text  string
}

type Chart struct {
	mu sync.Mutex

	options      Options
	formatter    *numfmt.Formatter
	scaledDigits int

	xTitle, yTitle string

	series  []*Series
	hovered *hover
}

func NewChart(formatter *numfmt.Formatter, options Options) *Chart {
	if formatter == nil {
		formatter = numfmt.Default()
	}

	c := &Chart{
		options:      options,
		formatter:    formatter,
		scaledDigits: formatter.Spec().ScaledFractionDigits,
	}

	for _, descriptor := range depthchart.DefaultDescriptors() {
		description, err := descriptor.Description.Render(depthchart.DescriptionSlots{
			CurrentPrice: depthchart.PendingCurrentPrice,
		})
		if err != nil {
			log.WithError(err).Errorf("can not render the initial description of the %s series", descriptor.Kind)
		}

		c.series = append(c.series, &Series{
			chart:       c,
			descriptor:  descriptor,
			description: description,
		})
	}

	return c
}

func (c *Chart) SetAxisTitles(x, y string) {
	c.mu.Lock()
	c.xTitle, c.yTitle = x, y
	c.mu.Unlock()
}

func (c *Chart) AxisTitles() (x, y string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.xTitle, c.yTitle
}

func (c *Chart) Series() []depthchart.Series {
	out := make([]depthchart.Series, len(c.series))
	for i, s := range c.series {
		out[i] = s
	}
	return out
}

func (c *Chart) SeriesOf(kind types.SeriesKind) (*Series, bool) {
	for _, s := range c.series {
		if s.descriptor.Kind == kind {
			return s, true
		}
	}

	return nil, false
}

// Hover calls the tooltip hook of the series for point and keeps the tooltip
// as the annotation of the next render.
func (c *Chart) Hover(kind types.SeriesKind, point types.DataPoint) (string, error) {
	s, ok := c.SeriesOf(kind)
	if !ok {
		return "", errors.Wrapf(ErrUnknownSeries, "kind %s", kind)
	}

	c.mu.Lock()
	hook := s.hook
	c.mu.Unlock()

	if hook == nil {
		return "", errors.Wrapf(ErrNoTooltipHook, "kind %s", kind)
	}

	text := hook(point)

	c.mu.Lock()
	c.hovered = &hover{kind: kind, point: point, text: text}
	c.mu.Unlock()

	log.Debugf("hover %s at %v: %q", kind, point.Axis(), text)
	return text, nil
}

// Nearest snaps price to the closest plotted point of the bid and ask series.
func (c *Chart) Nearest(price float64) (types.SeriesKind, types.DataPoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		found    bool
		bestKind types.SeriesKind
		best     Point
		distance = math.Inf(1)
	)

	for _, s := range c.series {
		if !s.descriptor.Kind.HasTooltip() {
			continue
		}

		for _, p := range s.points {
			if d := math.Abs(p.Price - price); d < distance {
				found, bestKind, best, distance = true, s.descriptor.Kind, p, d
			}
		}
	}

	if !found {
		return "", types.DataPoint{}, ErrNoSnapSeries
	}

	return bestKind, types.NewDataPoint(best.Price, best.Volume), nil
}

// HoverAt snaps price to the nearest bid or ask point and hovers it.
func (c *Chart) HoverAt(price float64) (string, error) {
	kind, point, err := c.Nearest(price)
	if err != nil {
		return "", err
	}

	return c.Hover(kind, point)
}

func (c *Chart) ClearHover() {
	c.mu.Lock()
	c.hovered = nil
	c.mu.Unlock()
}

// LegendItem is the label and the rendered description of a series.
type LegendItem struct {
	Kind        types.SeriesKind
	Label       string
	Description string
}

func (c *Chart) Legend() []LegendItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LegendItem, 0, len(c.series))
	for _, s := range c.series {
		items = append(items, LegendItem{
			Kind:        s.descriptor.Kind,
			Label:       s.descriptor.Label,
			Description: s.description,
		})
	}
	return items
}

func (c *Chart) Render(w io.Writer) error {
	c.mu.Lock()
	graph, err := c.buildGraph()
	c.mu.Unlock()

	if err != nil {
		return err
	}

	return graph.Render(chart.PNG, w)
}

func (c *Chart) buildGraph() (*chart.Chart, error) {
	palette := c.options.Palette
	foreground := chart.Style{FontColor: palette.Foreground, StrokeColor: palette.Foreground}

	graph := &chart.Chart{
		Title:      c.options.Title,
		TitleStyle: chart.Style{FontColor: palette.Foreground},
		Width:      c.options.Width,
		Height:     c.options.Height,
		Background: chart.Style{FillColor: palette.Background},
		Canvas:     chart.Style{FillColor: palette.Background},
		XAxis: chart.XAxis{
			Name:           c.xTitle,
			NameStyle:      foreground,
			Style:          foreground,
			ValueFormatter: c.formatPriceTick,
		},
		YAxis: chart.YAxis{
			Name:           c.yTitle,
			NameStyle:      foreground,
			Style:          foreground,
			ValueFormatter: c.formatVolumeTick,
		},
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := 0.0, math.Inf(-1)
	for _, s := range c.series {
		if len(s.points) == 0 {
			continue
		}

		xs, ys := s.values()
		for i := range xs {
			xMin, xMax = math.Min(xMin, xs[i]), math.Max(xMax, xs[i])
			yMin, yMax = math.Min(yMin, ys[i]), math.Max(yMax, ys[i])
		}

		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.descriptor.Label,
			Style:   s.style(palette),
			XValues: xs,
			YValues: ys,
		})
	}

	if len(graph.Series) == 0 {
		return nil, ErrNoData
	}

	padding := (xMax - xMin) * c.options.ExtraPadding
	if padding == 0 {
		padding = math.Max(math.Abs(xMax)*c.options.ExtraPadding, 1)
	}
	graph.XAxis.Range = &chart.ContinuousRange{Min: xMin - padding, Max: xMax + padding}

	if yMax <= yMin {
		yMax = yMin + 1
	}
	graph.YAxis.Range = &chart.ContinuousRange{Min: yMin, Max: yMax * 1.05}

	if c.hovered != nil {
		graph.Series = append(graph.Series, chart.AnnotationSeries{
			Name: "tooltip",
			Style: chart.Style{
				FillColor:   palette.Background,
				StrokeColor: palette.SeriesColor(c.hovered.kind),
				FontColor:   palette.Foreground,
			},
			Annotations: []chart.Value2{{
				XValue: c.hovered.point.Axis(),
				YValue: c.hovered.point.Series(),
				Label:  annotationLabel(c.hovered.text),
			}},
		})
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(graph, chart.Style{
			FillColor:   palette.Background,
			FontColor:   palette.Foreground,
			StrokeColor: palette.Foreground,
		}),
	}

	return graph, nil
}

func (c *Chart) formatPriceTick(v interface{}) string {
	if f, ok := v.(float64); ok {
		return c.formatter.Format(f, c.formatter.DecimalsFor(f))
	}
	return ""
}

func (c *Chart) formatVolumeTick(v interface{}) string {
	if f, ok := v.(float64); ok {
		return c.formatter.Format(f, c.scaledDigits)
	}
	return ""
}

// annotationLabel flattens a tooltip into the single line go-chart annotations support.
func annotationLabel(markup string) string {
	return joinLines(tooltip.PlainText(markup), " | ")
}

// Point is a plotted (price, volume) pair.
type Point struct {
	Price  float64 `json:"price" yaml:"price"`
	Volume float64 `json:"volume" yaml:"volume"`
}

func sortPoints(points []Point) []Point {
	sorted := append([]Point(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}
