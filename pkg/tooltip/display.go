package tooltip

import (
	"strings"

	"github.com/leekchan/accounting"
)

// RenderMarkup replaces every [bold]...[/] span with bold(span).
// An unterminated span runs to the end of the text.
func RenderMarkup(markup string, bold func(string) string) string {
	var b strings.Builder
	rest := markup
	for {
		i := strings.Index(rest, BoldOpen)
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}

		b.WriteString(rest[:i])
		rest = rest[i+len(BoldOpen):]

		j := strings.Index(rest, BoldClose)
		if j < 0 {
			b.WriteString(bold(rest))
			return b.String()
		}

		b.WriteString(bold(rest[:j]))
		rest = rest[j+len(BoldClose):]
	}
}

// PlainText strips the bold markup and collapses the padding spaces around the emphasized spans.
func PlainText(markup string) string {
	plain := RenderMarkup(markup, func(s string) string { return s })

	lines := strings.Split(plain, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}

	return strings.Join(lines, "\n")
}

// CurrentPriceDisplay renders the legend text of the current price, e.g. "4.05 DAI".
func (b *Builder) CurrentPriceDisplay(price float64, quoteLabel string) string {
	rounded := b.formatter.RoundSignificant(price)

	a := accounting.DefaultAccounting(quoteLabel, b.formatter.DecimalsFor(price))
	a.Format = "%v %s"
	return strings.TrimSpace(a.FormatMoneyFloat64(rounded.InexactFloat64()))
}
