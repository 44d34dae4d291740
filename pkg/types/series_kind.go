package types

import (
	"fmt"
	"strings"
)

// SeriesKind defines the role of a plotted line in the depth chart
type SeriesKind string

const (
	SeriesKindBid          = SeriesKind("bid")
	SeriesKindAsk          = SeriesKind("ask")
	SeriesKindNewOrder     = SeriesKind("new_order")
	SeriesKindCurrentPrice = SeriesKind("current_price")
)

var SeriesKinds = []SeriesKind{
	SeriesKindBid,
	SeriesKindAsk,
	SeriesKindNewOrder,
	SeriesKindCurrentPrice,
}

func (kind SeriesKind) String() string {
	return string(kind)
}

// Role returns the tooltip role name of the kind, only ask and bid series have one.
func (kind SeriesKind) Role() (string, bool) {
	switch kind {
	case SeriesKindAsk:
		return "Ask", true
	case SeriesKindBid:
		return "Bid", true
	}

	return "", false
}

func (kind SeriesKind) HasTooltip() bool {
	_, ok := kind.Role()
	return ok
}

func ParseSeriesKind(s string) (SeriesKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bid", "bids":
		return SeriesKindBid, nil
	case "ask", "asks", "sell", "supply":
		return SeriesKindAsk, nil
	case "new_order", "neworder", "new-order", "input":
		return SeriesKindNewOrder, nil
	case "current_price", "currentprice", "current-price", "price":
		return SeriesKindCurrentPrice, nil
	}

	return "", fmt.Errorf("unknown series kind %q", s)
}
