package style

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/auctionlab/depthchart/pkg/types"
)

const (
	GreenColor    = "#28a745"
	RedColor      = "#dc3545"
	WhiteColor    = "#FFFFFF"
	GreyColor     = "#565A69"
	OrangeColor   = "#FF6347"
	DarkBlueColor = "#001429"
	BlueColor     = "#174172"
)

// Palette holds the colors of the depth chart.
type Palette struct {
	Background drawing.Color
	Foreground drawing.Color
	Grid       drawing.Color
	Series     map[types.SeriesKind]drawing.Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: Color(DarkBlueColor),
		Foreground: Color(WhiteColor),
		Grid:       Color(WhiteColor).WithAlpha(128),
		Series: map[types.SeriesKind]drawing.Color{
			types.SeriesKindBid:          Color(GreenColor),
			types.SeriesKindAsk:          Color(RedColor),
			types.SeriesKindNewOrder:     Color(OrangeColor),
			types.SeriesKindCurrentPrice: Color(WhiteColor),
		},
	}
}

func (p Palette) SeriesColor(kind types.SeriesKind) drawing.Color {
	if c, ok := p.Series[kind]; ok {
		return c
	}

	return p.Foreground
}

// Color parses a "#rrggbb" hex color.
func Color(hex string) drawing.Color {
	return drawing.ColorFromHex(trimHash(hex))
}

func trimHash(hex string) string {
	if len(hex) > 0 && hex[0] == '#' {
		return hex[1:]
	}

	return hex
}
