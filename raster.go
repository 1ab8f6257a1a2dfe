package piechart

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // for decoding the rendered chart in Image
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// gochartSurface binds the capability interfaces to a go-chart renderer, so
// the same command sequence can target the raster (PNG) or vector (SVG)
// backend.
type gochartSurface struct {
	r chart.Renderer
}

func newSurface(r chart.Renderer) *gochartSurface {
	return &gochartSurface{r: r}
}

func (s *gochartSurface) SetFillColor(c RGB) {
	s.r.SetFillColor(c.drawing())
}

func (s *gochartSurface) MoveTo(p Point) {
	s.r.MoveTo(px(p.X), px(p.Y))
}

func (s *gochartSurface) AddArc(center Point, radius, startAngle, endAngle float64) {
	s.r.ArcTo(px(center.X), px(center.Y), radius, radius, startAngle, endAngle-startAngle)
}

func (s *gochartSurface) FillPath() {
	s.r.Close()
	s.r.Fill()
}

// applyFont pushes the font state go-chart needs before measuring or drawing
// text, falling back to the bundled typeface when the Font has none.
func (s *gochartSurface) applyFont(f Font, c drawing.Color) {
	ttf := f.TTF
	if ttf == nil {
		ttf, _ = chart.GetDefaultFont()
	}
	size := f.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	s.r.SetFont(ttf)
	s.r.SetFontSize(size)
	s.r.SetFontColor(c)
}

func (s *gochartSurface) Measure(text string, f Font) (float64, float64) {
	s.applyFont(f, drawing.ColorBlack)
	box := s.r.MeasureText(text)
	return float64(box.Width()), float64(box.Height())
}

func (s *gochartSurface) DrawText(text string, rect Rect, f Font, c RGB) {
	s.applyFont(f, c.drawing())
	// rect was sized from Measure, so its left edge and bottom edge give the
	// origin and baseline go-chart anchors text at.
	s.r.Text(text, px(rect.X), px(rect.Y+rect.H))
}

func px(v float64) int {
	return int(math.Round(v))
}

// Draw renders the chart into an already-constructed go-chart renderer.
func Draw(r chart.Renderer, segments []Segment, opts DisplayOptions, width, height int) {
	s := newSurface(r)
	cr := NewRenderer(s)
	cmds := cr.Render(segments, opts, Viewport{Width: float64(width), Height: float64(height)})
	Replay(cmds, s, s)
}

// Encode renders the chart and writes it to w using the given backend
// provider, chart.PNG or chart.SVG.
func Encode(w io.Writer, segments []Segment, opts DisplayOptions, width, height int, provider chart.RendererProvider) error {
	r, err := provider(width, height)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	r.SetDPI(chart.DefaultDPI)
	Draw(r, segments, opts, width, height)
	if err := r.Save(w); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// EncodePNG writes the chart to w as a PNG raster.
func EncodePNG(w io.Writer, segments []Segment, opts DisplayOptions, width, height int) error {
	return Encode(w, segments, opts, width, height, chart.PNG)
}

// EncodeSVG writes the chart to w as an SVG document.
func EncodeSVG(w io.Writer, segments []Segment, opts DisplayOptions, width, height int) error {
	return Encode(w, segments, opts, width, height, chart.SVG)
}

// Image renders the chart to an image.Image for hosts that display rather
// than persist it. Rendering problems degrade to a blank image of the right
// size so the host view always has something to show.
func Image(segments []Segment, opts DisplayOptions, width, height int) image.Image {
	buf := bytes.NewBuffer(nil)
	if err := EncodePNG(buf, segments, opts, width, height); err != nil {
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}
	img, _, err := image.Decode(buf)
	if err != nil {
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}
	return img
}
