package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionlab/depthchart/pkg/depthchart"
	"github.com/auctionlab/depthchart/pkg/tooltip"
	"github.com/auctionlab/depthchart/pkg/types"
	"github.com/auctionlab/depthchart/pkg/version"
)

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"12345", "0.0001234567", "-4.05"})
	require.NoError(t, err)
	assert.Equal(t, []float64{12345, 0.0001234567, -4.05}, values)

	_, err = parseValues([]string{"12k"})
	assert.Error(t, err)
}

func TestPrintFormatTable(t *testing.T) {
	var buf bytes.Buffer
	printFormatTable(&buf, tooltip.NewBuilder(nil), []float64{12345, 0.0001234567, 100}, -1)

	out := buf.String()
	assert.Contains(t, out, "12.35 K")
	assert.Contains(t, out, "12 K")
	assert.Contains(t, out, "0.000123457")
	assert.Contains(t, out, "Decimals")
}

func TestTooltipCommand(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{
		"tooltip", "--plain",
		"--kind", "ask",
		"--price", "4.05",
		"--volume", "12345",
		"--base", "OWL",
		"--quote", "WXDAI",
		"--quote-address", "0xe91D153E0b41518A2Ce8Dd3D7944Fa863463a97d",
		"--chain", "100",
	})
	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, "XDAI-OWL\nAsk Price: 4.05 XDAI\nVolume: 12.35 K XDAI\n", buf.String())
}

func TestLoadDepthData(t *testing.T) {
	depth, err := loadDepthData("testdata/depth.json")
	require.NoError(t, err)
	assert.Equal(t, "OWL", depth.BaseToken.Symbol)
	require.NotNil(t, depth.CurrentPrice)
	assert.Equal(t, 4.05, *depth.CurrentPrice)
	assert.Len(t, depth.Bids, 3)
	assert.Len(t, depth.Asks, 3)
	assert.Empty(t, depth.NewOrder)

	_, err = loadDepthData("testdata/missing.json")
	assert.Error(t, err)
}

func TestBuildDepthChart(t *testing.T) {
	depth, err := loadDepthData("testdata/depth.json")
	require.NoError(t, err)

	graph, err := buildDepthChart(nil, depth)
	require.NoError(t, err)

	x, y := graph.AxisTitles()
	assert.Equal(t, "Price", x)
	assert.Equal(t, "Volume (XDAI)", y)

	legend := graph.Legend()
	require.Len(t, legend, 4)
	assert.Contains(t, legend[3].Description, `<strong style="font-size:14px;">4.05 XDAI</strong>`)

	current, ok := graph.SeriesOf(types.SeriesKindCurrentPrice)
	require.True(t, ok)
	points := current.Points()
	require.Len(t, points, 2)
	assert.Equal(t, 20000.0, points[1].Volume)

	text, err := graph.HoverAt(4.0)
	require.NoError(t, err)
	assert.Equal(t, "[bold]XDAI-OWL[/]\nBid Price: [bold] 4 [/] XDAI\nVolume: [bold] 5.00 K [/] XDAI", text)
}

func TestRenderCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "depth.png")

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"render", "--input", "testdata/depth.json", "--output", output, "--hover", "4.05"})
	require.NoError(t, RootCmd.Execute())
	assert.FileExists(t, output)
	assert.Contains(t, buf.String(), "Sell Supply")
}

func TestTooltipCommand_MissingLabels(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{
		"tooltip", "--plain",
		"--kind", "bid",
		"--price", "4.05",
		"--base=",
		"--base-address=",
		"--quote", "DAI",
		"--quote-address=",
		"--chain", "1",
	})

	err := RootCmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, depthchart.ErrMissingLabel))
	assert.Contains(t, err.Error(), "base token")
	assert.Empty(t, buf.String())
}

func TestWriteChart(t *testing.T) {
	depth, err := loadDepthData("testdata/depth.json")
	require.NoError(t, err)

	graph, err := buildDepthChart(nil, depth)
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "depth.png")
	require.NoError(t, writeChart(graph, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	err = writeChart(graph, filepath.Join(t.TempDir(), "missing", "depth.png"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"version"})
	require.NoError(t, RootCmd.Execute())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "depthchart "+version.Version+" ("))
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}
