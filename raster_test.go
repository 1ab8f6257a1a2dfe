package piechart

import (
	"bytes"
	"strings"
	"testing"
)

// recordingSurface captures the call sequence Replay makes.
type recordingSurface struct {
	ops []string
}

func (r *recordingSurface) SetFillColor(RGB)                     { r.ops = append(r.ops, "fillcolor") }
func (r *recordingSurface) MoveTo(Point)                         { r.ops = append(r.ops, "moveto") }
func (r *recordingSurface) AddArc(Point, float64, float64, float64) { r.ops = append(r.ops, "arc") }
func (r *recordingSurface) FillPath()                            { r.ops = append(r.ops, "fill") }
func (r *recordingSurface) DrawText(text string, _ Rect, _ Font, _ RGB) {
	r.ops = append(r.ops, "text:"+text)
}

func TestReplayOrder(t *testing.T) {
	cmds := []DrawCommand{
		WedgeFill{Color: RGB{R: 1}, Radius: 50, EndAngle: 1},
		LabelDraw{Text: "A"},
		WedgeFill{Color: RGB{B: 1}, Radius: 50, StartAngle: 1, EndAngle: 2},
	}
	s := &recordingSurface{}
	Replay(cmds, s, s)
	want := []string{"fillcolor", "moveto", "arc", "fill", "text:A", "fillcolor", "moveto", "arc", "fill"}
	if len(s.ops) != len(want) {
		t.Fatalf("got %d ops %v, want %d", len(s.ops), s.ops, len(want))
	}
	for i, op := range s.ops {
		if op != want[i] {
			t.Errorf("op %d = %q, want %q", i, op, want[i])
		}
	}
}

func TestReplayNilDrawerDropsLabels(t *testing.T) {
	cmds := []DrawCommand{
		WedgeFill{Color: RGB{R: 1}, Radius: 10, EndAngle: 1},
		LabelDraw{Text: "dropped"},
	}
	s := &recordingSurface{}
	Replay(cmds, s, nil)
	for _, op := range s.ops {
		if strings.HasPrefix(op, "text:") {
			t.Fatalf("label drawn through nil drawer: %v", s.ops)
		}
	}
}

func testSegments() []Segment {
	var pal Palette
	return []Segment{
		{Color: pal.SegmentColor(0), Name: "grants", Value: 12.5},
		{Color: pal.SegmentColor(1), Name: "fees", Value: 4},
		{Color: pal.SegmentColor(2), Name: "other", Value: 2},
	}
}

func TestEncodePNG(t *testing.T) {
	font, err := DefaultFont(0)
	if err != nil {
		t.Fatalf("default font: %v", err)
	}
	opts := DisplayOptions{ShowLabels: true, ShowValueInLabel: true, LabelFont: font}
	buf := bytes.NewBuffer(nil)
	if err := EncodePNG(buf, testSegments(), opts, 400, 400); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output does not start with PNG magic")
	}
}

func TestEncodeSVG(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := EncodeSVG(buf, testSegments(), DisplayOptions{}, 300, 300); err != nil {
		t.Fatalf("EncodeSVG: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output has no <svg element: %.80s", buf.String())
	}
}

func TestImageSize(t *testing.T) {
	img := Image(testSegments(), DisplayOptions{}, 120, 80)
	if img == nil {
		t.Fatal("Image returned nil")
	}
	b := img.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image bounds %v, want 120x80", b)
	}
}

func TestImageNeverNil(t *testing.T) {
	// Degenerate input still yields a drawable image for the host view.
	img := Image(nil, DisplayOptions{}, 64, 64)
	if img == nil {
		t.Fatal("Image returned nil for empty input")
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("image bounds %v, want 64x64", b)
	}
}
