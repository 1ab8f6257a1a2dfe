package piechart

// Point is a position in viewport coordinates, y growing downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W*0.5, Y: r.Y + r.H*0.5}
}

// DrawCommand is one step of a render pass, either a WedgeFill or a
// LabelDraw. Commands are replayed in order; interleaving guarantees each
// label is drawn on top of its own wedge and under no later one.
type DrawCommand interface {
	drawCommand()
}

// WedgeFill fills one circular sector: move to the center, trace the arc from
// StartAngle to EndAngle, close back to the center and fill.
type WedgeFill struct {
	Color      RGB
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (WedgeFill) drawCommand() {}

// Span returns the angular width of the wedge in radians.
func (w WedgeFill) Span() float64 {
	return w.EndAngle - w.StartAngle
}

// LabelDraw draws Text centered inside Rect using the contrast color picked
// against the wedge fill.
type LabelDraw struct {
	Text  string
	Rect  Rect
	Font  Font
	Color RGB
}

func (LabelDraw) drawCommand() {}

// Replay executes a command sequence against the given surfaces. A nil text
// drawer drops label commands, which mirrors how degraded renders behave
// elsewhere: incomplete output over a failed one.
func Replay(cmds []DrawCommand, canvas Canvas, text TextDrawer) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case WedgeFill:
			if canvas == nil {
				continue
			}
			canvas.SetFillColor(c.Color)
			canvas.MoveTo(c.Center)
			canvas.AddArc(c.Center, c.Radius, c.StartAngle, c.EndAngle)
			canvas.FillPath()
		case LabelDraw:
			if text == nil {
				continue
			}
			text.DrawText(c.Text, c.Rect, c.Font, c.Color)
		}
	}
}
