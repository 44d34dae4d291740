package depthchart

import "github.com/pkg/errors"

var (
	ErrMissingSeries = errors.New("chart is missing series")
	ErrSeriesOrder   = errors.New("unexpected chart series order")
	ErrMissingLabel  = errors.New("missing chart label")
	ErrNoPriceSlot   = errors.New("current price description has no current price slot")
)
