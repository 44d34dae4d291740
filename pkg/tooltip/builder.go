package tooltip

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/auctionlab/depthchart/pkg/numfmt"
	"github.com/auctionlab/depthchart/pkg/types"
)

const (
	BoldOpen  = "[bold]"
	BoldClose = "[/]"
)

var ErrNoTooltip = errors.New("series kind does not render tooltips")

// Context carries everything needed to render one tooltip.
type Context struct {
	MarketLabel string
	QuoteLabel  string
	Point       types.DataPoint
	Kind        types.SeriesKind
}

type Builder struct {
	formatter    *numfmt.Formatter
	scaledDigits int
}

func NewBuilder(formatter *numfmt.Formatter) *Builder {
	if formatter == nil {
		formatter = numfmt.Default()
	}

	return &Builder{
		formatter:    formatter,
		scaledDigits: formatter.Spec().ScaledFractionDigits,
	}
}

func (b *Builder) Formatter() *numfmt.Formatter {
	return b.formatter
}

// Build renders the ask or bid tooltip of ctx.Point:
//
//	[bold]DAI-OWL[/]
//	Ask Price: [bold] 4.05 [/] DAI
//	Volume: [bold] 12.35 K [/] DAI
func (b *Builder) Build(ctx Context) (string, error) {
	role, ok := ctx.Kind.Role()
	if !ok {
		return "", errors.Wrapf(ErrNoTooltip, "kind %s", ctx.Kind)
	}

	return b.build(role, ctx.MarketLabel, ctx.QuoteLabel, ctx.Point), nil
}

// Hook binds the labels into a tooltip hook for the given series kind.
// The returned hook only reads the point it is called with.
func (b *Builder) Hook(kind types.SeriesKind, marketLabel, quoteLabel string) (types.TooltipHook, error) {
	role, ok := kind.Role()
	if !ok {
		return nil, errors.Wrapf(ErrNoTooltip, "kind %s", kind)
	}

	return func(point types.DataPoint) string {
		return b.build(role, marketLabel, quoteLabel, point)
	}, nil
}

func (b *Builder) build(role, marketLabel, quoteLabel string, point types.DataPoint) string {
	price := b.FormatValue(point.Axis())
	volume := b.FormatValue(point.Series())

	return fmt.Sprintf("%s%s%s\n%s Price: %s %s %s %s\nVolume: %s %s %s %s",
		BoldOpen, marketLabel, BoldClose,
		role, BoldOpen, price, BoldClose, quoteLabel,
		BoldOpen, volume, BoldClose, quoteLabel)
}

// FormatValue rounds value to the significant digits of the format spec and
// renders it with its own precision. Values that take a magnitude suffix use
// the scaled fraction digits of the spec instead.
func (b *Builder) FormatValue(value float64) string {
	rounded := b.formatter.RoundSignificant(value)
	digits := numfmt.FractionDigits(rounded)
	if _, scaled := b.formatter.ScaleDecimal(rounded); scaled {
		digits = b.scaledDigits
	}

	return b.formatter.FormatDecimal(rounded, digits)
}
