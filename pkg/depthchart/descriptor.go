package depthchart

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/pkg/errors"

	"github.com/auctionlab/depthchart/pkg/types"
)

// CurrentPriceSlot is the named slot of a description template that receives the current price display.
const CurrentPriceSlot = "{{.CurrentPrice}}"

// DescriptionSlots holds the values injected into a description template.
type DescriptionSlots struct {
	CurrentPrice string
}

// DescriptionTemplate is the legend description of a series. The source text
// is kept untouched so every render starts from the original template.
type DescriptionTemplate struct {
	source string
	tmpl   *template.Template
}

func NewDescriptionTemplate(source string) (*DescriptionTemplate, error) {
	tmpl, err := template.New("description").Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, errors.Wrapf(err, "can not parse description template %q", source)
	}

	return &DescriptionTemplate{source: source, tmpl: tmpl}, nil
}

func MustNewDescriptionTemplate(source string) *DescriptionTemplate {
	t, err := NewDescriptionTemplate(source)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *DescriptionTemplate) Source() string {
	return t.source
}

func (t *DescriptionTemplate) HasCurrentPriceSlot() bool {
	return strings.Contains(t.source, CurrentPriceSlot)
}

// Render fills the slots, slot values are HTML escaped.
func (t *DescriptionTemplate) Render(slots DescriptionSlots) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, slots); err != nil {
		return "", errors.Wrap(err, "can not render description template")
	}

	return buf.String(), nil
}

// SeriesDescriptor describes one plotted line of the depth chart.
type SeriesDescriptor struct {
	Kind        types.SeriesKind
	Label       string
	Description *DescriptionTemplate
}

// PendingCurrentPrice is shown in the current price slot until the chart is configured.
const PendingCurrentPrice = "-"

// DefaultDescriptors returns the descriptors of the depth chart series in plotting order.
func DefaultDescriptors() []SeriesDescriptor {
	return []SeriesDescriptor{
		{
			Kind:  types.SeriesKindBid,
			Label: "Bids",
			Description: MustNewDescriptionTemplate(
				"Shows the price (x axis) and size (y axis)<br/> of the bids that have been placed,<br/> both expressed in the bid token"),
		},
		{
			Kind:  types.SeriesKindAsk,
			Label: "Sell Supply",
			Description: MustNewDescriptionTemplate(
				"Shows sell supply of the auction<br/> based on the price and nominated<br/> in the bidding token"),
		},
		{
			Kind:  types.SeriesKindNewOrder,
			Label: "New orders",
			Description: MustNewDescriptionTemplate(
				"Shows the new order<br/> that would be placed based<br/> on the current amount and price input"),
		},
		{
			Kind:  types.SeriesKindCurrentPrice,
			Label: "Current price",
			Description: MustNewDescriptionTemplate(
				`Shows the current price: <strong style="font-size:14px;">` + CurrentPriceSlot + `</strong> <br/>This price would be<br/> the closing price of the auction<br/> if no more bids are submitted or cancelled`),
		},
	}
}
