package piechart

import (
	"github.com/wcharczuk/go-chart/v2"
)

// Palette supplies fill colors for segments that don't carry their own,
// cycling go-chart's alternate color wheel. The channels are dampened a bit
// so white label text stays readable on most of the wheel.
type Palette struct{}

func (Palette) SegmentColor(index int) RGB {
	c := chart.GetAlternateColor(index + 1)
	if c.G > 192 {
		c.G -= 64
	}
	if c.B > 192 {
		c.B -= 64
	}
	c.A = 255
	return fromDrawing(c)
}
