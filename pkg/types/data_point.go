package types

import "math"

// DataPoint is a plotted (price, volume) pair surfaced by the chart on hover.
// A nil field means the chart did not provide the value.
type DataPoint struct {
	AxisValue   *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	SeriesValue *float64 `json:"volume,omitempty" yaml:"volume,omitempty"`
}

func NewDataPoint(axisValue, seriesValue float64) DataPoint {
	return DataPoint{
		AxisValue:   &axisValue,
		SeriesValue: &seriesValue,
	}
}

// Axis returns the axis value, absent or non-finite values are read as zero.
func (p DataPoint) Axis() float64 {
	return valueOrZero(p.AxisValue)
}

// Series returns the series value, absent or non-finite values are read as zero.
func (p DataPoint) Series() float64 {
	return valueOrZero(p.SeriesValue)
}

func (p DataPoint) IsComplete() bool {
	return p.AxisValue != nil && p.SeriesValue != nil
}

func valueOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}

	return *v
}

// TooltipHook renders the tooltip body for a hovered data point.
type TooltipHook func(point DataPoint) string
