package depthchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionlab/depthchart/pkg/types"
)

func TestDefaultDescriptors(t *testing.T) {
	descriptors := DefaultDescriptors()
	require.Len(t, descriptors, len(ExpectedSeriesOrder))

	for i, d := range descriptors {
		assert.Equal(t, ExpectedSeriesOrder[i], d.Kind)
		assert.NotEmpty(t, d.Label)
		require.NotNil(t, d.Description)
		assert.Equal(t, d.Kind == types.SeriesKindCurrentPrice, d.Description.HasCurrentPriceSlot())
	}
}

func TestDescriptionTemplate_Render(t *testing.T) {
	tmpl := MustNewDescriptionTemplate(`price: <strong>` + CurrentPriceSlot + `</strong> left as is`)

	out, err := tmpl.Render(DescriptionSlots{CurrentPrice: "4.05 DAI"})
	require.NoError(t, err)
	assert.Equal(t, "price: <strong>4.05 DAI</strong> left as is", out)

	// rendering always starts from the source template
	out, err = tmpl.Render(DescriptionSlots{CurrentPrice: "1.23 K XDAI"})
	require.NoError(t, err)
	assert.Equal(t, "price: <strong>1.23 K XDAI</strong> left as is", out)
	assert.Equal(t, `price: <strong>{{.CurrentPrice}}</strong> left as is`, tmpl.Source())

	out, err = tmpl.Render(DescriptionSlots{})
	require.NoError(t, err)
	assert.Equal(t, "price: <strong></strong> left as is", out)
}

func TestNewDescriptionTemplate_Invalid(t *testing.T) {
	_, err := NewDescriptionTemplate("{{.CurrentPrice")
	assert.Error(t, err)
}
