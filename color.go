package piechart

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RGB is a color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

var (
	Black = RGB{}
	White = RGB{R: 1, G: 1, B: 1}
)

// Color is the capability a segment color must provide. Components reports
// the RGB channels and whether they are available at all; colors that cannot
// be expressed in RGB (pattern fills and the like) return ok == false, and
// the renderer skips their labels instead of guessing a contrast color.
type Color interface {
	Components() (rgb RGB, ok bool)
}

// Components implements Color; a plain RGB value always has its channels.
func (c RGB) Components() (RGB, bool) {
	return c, true
}

// contrastThreshold is the average-brightness cutoff above which a fill is
// considered light. Deliberately a flat channel average, not perceptual
// luminance.
const contrastThreshold = 0.7

// Contrast picks the label foreground for a given wedge fill: black on light
// fills (average brightness strictly above 0.7), white otherwise.
func Contrast(fill RGB) RGB {
	if (fill.R+fill.G+fill.B)/3 > contrastThreshold {
		return Black
	}
	return White
}

// FromHex parses colors like "#1f77b4" or "d62728".
func FromHex(s string) RGB {
	return fromDrawing(drawing.ColorFromHex(strings.TrimPrefix(s, "#")))
}

func fromDrawing(c drawing.Color) RGB {
	return RGB{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// drawing converts to go-chart's byte-channel color, clamping out-of-range
// channels. Always fully opaque.
func (c RGB) drawing() drawing.Color {
	return drawing.Color{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: 255,
	}
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
