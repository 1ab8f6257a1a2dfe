package piechart

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
)

// DefaultFontSize is used whenever a Font carries no explicit size.
const DefaultFontSize = 14.0

// Font describes a label typeface: a parsed TrueType font plus point size.
// A zero TTF means "backend default".
type Font struct {
	TTF  *truetype.Font
	Size float64
}

// DefaultFont returns go-chart's bundled typeface at the given size
// (DefaultFontSize when size <= 0).
func DefaultFont(size float64) (Font, error) {
	ttf, err := chart.GetDefaultFont()
	if err != nil {
		return Font{}, fmt.Errorf("load default font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	return Font{TTF: ttf, Size: size}, nil
}

// ParseFont builds a Font from raw TTF bytes, e.g. a host theme's font asset.
func ParseFont(b []byte, size float64) (Font, error) {
	ttf, err := truetype.Parse(b)
	if err != nil {
		return Font{}, fmt.Errorf("parse font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	return Font{TTF: ttf, Size: size}, nil
}
