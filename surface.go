package piechart

// The renderer core stays backend-agnostic: everything it needs from the
// outside world comes in through the small interfaces below. raster.go binds
// them to go-chart; tests bind them to fakes.

// Canvas is the path surface wedges are filled on.
type Canvas interface {
	SetFillColor(c RGB)
	MoveTo(p Point)
	// AddArc traces a circular arc around center from startAngle to endAngle
	// (radians, y-down coordinates, positive sweeping clockwise on screen).
	AddArc(center Point, radius, startAngle, endAngle float64)
	FillPath()
}

// TextMeasurer reports the bounding size of text in the given font.
type TextMeasurer interface {
	Measure(text string, font Font) (width, height float64)
}

// TextDrawer draws text centered within rect.
type TextDrawer interface {
	DrawText(text string, rect Rect, font Font, color RGB)
}

// ValueFormatter turns a segment value into its compact label form.
type ValueFormatter interface {
	Format(v float64) string
}

// Logger is the host-provided diagnostic channel. charmbracelet/log's Logger
// satisfies it directly.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...interface{}) {}
func (discardLogger) Warnf(string, ...interface{})  {}
