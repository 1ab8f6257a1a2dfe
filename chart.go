// Package piechart renders pie charts from named, colored, weighted segments.
//
// The core of the package is ChartRenderer, a pure function from segments,
// display options and a viewport to an ordered slice of draw commands. The
// commands are then replayed onto capability surfaces (a path canvas, a text
// drawer) supplied by a backend; raster.go provides a go-chart backed one.
package piechart

import (
	"fmt"
	"math"
)

// InitialAngle is where the first wedge starts: 12 o'clock in a y-down
// coordinate system where a positive angle sweeps clockwise on screen.
const InitialAngle = -math.Pi / 2

// labelRadiusRatio biases labels toward the wider outer part of the wedge.
const labelRadiusRatio = 0.67

// Segment is one slice of the pie. Value must be finite; negative values are
// treated as zero weight (a warning is logged, nothing is drawn for them).
type Segment struct {
	Color Color
	Name  string
	Value float64
}

// DisplayOptions controls label rendering. Replaced wholesale on change.
type DisplayOptions struct {
	ShowLabels       bool
	ShowValueInLabel bool
	LabelFont        Font
}

// Viewport is the drawable area the chart is fitted into.
type Viewport struct {
	Width  float64
	Height float64
}

// ChartRenderer computes draw commands for a pie chart. It holds only its
// collaborators, never per-render state, so a single instance may be shared
// and called concurrently.
type ChartRenderer struct {
	// Measurer sizes label text. Required when labels are enabled; if nil,
	// labels are skipped with a warning.
	Measurer TextMeasurer
	// Formatter renders segment values inside labels. Defaults to the
	// locale-aware decimal formatter from NewFormatter.
	Formatter ValueFormatter
	// Log receives diagnostics for degraded output (skipped labels and the
	// like). Defaults to a discard logger.
	Log Logger
}

// NewRenderer returns a renderer using m for text measurement and the default
// formatter and discard logger.
func NewRenderer(m TextMeasurer) *ChartRenderer {
	return &ChartRenderer{Measurer: m}
}

// Render computes the ordered command sequence for one pass: for each segment
// a wedge fill, immediately followed by its label when labels are enabled.
// It is a stateless function of its inputs and never fails; malformed input
// degrades to fewer commands, not an error.
func (cr *ChartRenderer) Render(segments []Segment, opts DisplayOptions, view Viewport) []DrawCommand {
	total := 0.0
	for _, s := range segments {
		if s.Value < 0 {
			cr.logger().Debugf("segment %q has negative value %v, treating as zero", s.Name, s.Value)
			continue
		}
		total += s.Value
	}
	if total <= 0 {
		return nil
	}

	radius := 0.5 * math.Min(view.Width, view.Height)
	if radius <= 0 {
		return nil
	}
	center := Point{X: view.Width * 0.5, Y: view.Height * 0.5}

	cmds := make([]DrawCommand, 0, 2*len(segments))
	angle := InitialAngle
	for _, s := range segments {
		v := s.Value
		if v < 0 {
			v = 0
		}
		span := 2 * math.Pi * v / total
		end := angle + span

		fill, hasRGB := RGB{}, false
		if s.Color != nil {
			fill, hasRGB = s.Color.Components()
		}
		// Zero-span wedges are still emitted: a no-op when rasterized, and the
		// angle bookkeeping stays exact for the segments after them.
		cmds = append(cmds, WedgeFill{
			Color:      fill,
			Center:     center,
			Radius:     radius,
			StartAngle: angle,
			EndAngle:   end,
		})

		if opts.ShowLabels {
			if label, ok := cr.label(s, opts, center, radius, angle, end, hasRGB, fill); ok {
				cmds = append(cmds, label)
			}
		}
		angle = end
	}
	return cmds
}

// label computes one segment's label placement. ok is false when the label
// must be skipped: no RGB components to pick a contrast color against, or no
// measurer to size the text with.
func (cr *ChartRenderer) label(s Segment, opts DisplayOptions, center Point, radius, start, end float64, hasRGB bool, fill RGB) (LabelDraw, bool) {
	if !hasRGB {
		cr.logger().Warnf("segment %q has no RGB components, skipping label", s.Name)
		return LabelDraw{}, false
	}
	if cr.Measurer == nil {
		cr.logger().Warnf("no text measurer configured, skipping label for %q", s.Name)
		return LabelDraw{}, false
	}

	text := s.Name
	if opts.ShowValueInLabel {
		text = fmt.Sprintf("%s (%s)", s.Name, cr.formatter().Format(s.Value))
	}

	mid := start + (end-start)*0.5
	labelRadius := radius * labelRadiusRatio
	anchor := Point{
		X: center.X + labelRadius*math.Cos(mid),
		Y: center.Y + labelRadius*math.Sin(mid),
	}
	w, h := cr.Measurer.Measure(text, opts.LabelFont)
	return LabelDraw{
		Text:  text,
		Rect:  Rect{X: anchor.X - w*0.5, Y: anchor.Y - h*0.5, W: w, H: h},
		Font:  opts.LabelFont,
		Color: Contrast(fill),
	}, true
}

func (cr *ChartRenderer) formatter() ValueFormatter {
	if cr.Formatter != nil {
		return cr.Formatter
	}
	return defaultFormatter
}

func (cr *ChartRenderer) logger() Logger {
	if cr.Log != nil {
		return cr.Log
	}
	return discardLogger{}
}
