package piechart

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ChartFile is the TOML description the CLI and viewer read their input
// from, e.g.:
//
//	width = 600
//	height = 600
//	labels = true
//	values = true
//	font-size = 14
//
//	[[segment]]
//	name = "grants"
//	value = 12.5
//	color = "#1f77b4"
//
//	[[segment]]
//	name = "fees"
//	value = 4
type ChartFile struct {
	Width    int                `toml:"width"`
	Height   int                `toml:"height"`
	Labels   bool               `toml:"labels"`
	Values   bool               `toml:"values"`
	FontSize float64            `toml:"font-size"`
	Segments []ChartFileSegment `toml:"segment"`
}

// ChartFileSegment is one [[segment]] entry. Color is an optional hex string;
// segments without one get a palette color by position.
type ChartFileSegment struct {
	Name  string  `toml:"name"`
	Value float64 `toml:"value"`
	Color string  `toml:"color"`
}

// LoadChartFile reads and decodes a TOML chart description.
func LoadChartFile(path string) (*ChartFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chart file: %w", err)
	}
	defer f.Close()
	cf, err := ReadChart(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cf, nil
}

// ReadChart decodes a TOML chart description from r.
func ReadChart(r io.Reader) (*ChartFile, error) {
	var cf ChartFile
	if _, err := toml.NewDecoder(r).Decode(&cf); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if len(cf.Segments) == 0 {
		return nil, fmt.Errorf("chart has no segments")
	}
	for _, s := range cf.Segments {
		if s.Value < 0 {
			return nil, fmt.Errorf("segment %q has negative value %v", s.Name, s.Value)
		}
	}
	return &cf, nil
}

// ToSegments converts the file entries into renderer segments.
func (cf *ChartFile) ToSegments() []Segment {
	var pal Palette
	segs := make([]Segment, len(cf.Segments))
	for i, s := range cf.Segments {
		c := pal.SegmentColor(i)
		if s.Color != "" {
			c = FromHex(s.Color)
		}
		segs[i] = Segment{Color: c, Name: s.Name, Value: s.Value}
	}
	return segs
}

// Options builds the display options the file asks for.
func (cf *ChartFile) Options() (DisplayOptions, error) {
	font, err := DefaultFont(cf.FontSize)
	if err != nil {
		return DisplayOptions{}, err
	}
	return DisplayOptions{
		ShowLabels:       cf.Labels,
		ShowValueInLabel: cf.Values,
		LabelFont:        font,
	}, nil
}
