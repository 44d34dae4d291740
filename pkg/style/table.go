package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewDefaultTableStyle is used by the cli commands that print formatted numbers.
func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}
	style.Format.Header = text.FormatDefault
	style.Color.Header = text.Colors{text.Bold, text.FgHiWhite}
	style.Color.Row = text.Colors{text.FgHiWhite}
	style.Color.RowAlternate = text.Colors{text.FgWhite}
	return &style
}
