// Command piechart-view displays a pie chart in a window and re-renders it
// whenever a display option changes.
package main

import (
	"flag"
	"os"
	"time"

	"fyne.io/fyne"
	"fyne.io/fyne/app"
	"fyne.io/fyne/canvas"
	"fyne.io/fyne/layout"
	"fyne.io/fyne/widget"
	charmlog "github.com/charmbracelet/log"
	"github.com/frameloss/prettyfyne"

	"github.com/frameloss/piechart"
)

func main() {
	var (
		file string
		size int
	)
	flag.StringVar(&file, "f", "", "chart description (TOML); a built-in sample is shown when empty")
	flag.IntVar(&size, "size", 480, "chart size in pixels")
	flag.Parse()

	logger := charmlog.New(os.Stderr)

	segments := sampleSegments()
	if file != "" {
		cf, err := piechart.LoadChartFile(file)
		if err != nil {
			logger.Fatal("load chart", "err", err)
		}
		segments = cf.ToSegments()
	}

	// Rendered at twice the display size so the image stays crisp on
	// high-DPI screens, same trick the label font size follows.
	font, err := piechart.DefaultFont(28)
	if err != nil {
		logger.Fatal("load font", "err", err)
	}
	opts := piechart.DisplayOptions{
		ShowLabels:       true,
		ShowValueInLabel: true,
		LabelFont:        font,
	}

	me := app.NewWithID("org.frameloss.piechart")
	win := me.NewWindow("Pie Chart")

	pie := &canvas.Image{}
	redraw := func() {
		pie.Image = piechart.Image(segments, opts, size*2, size*2)
		pie.Refresh()
	}
	redraw()

	labelsCheck := widget.NewCheck("Labels", func(on bool) {
		opts.ShowLabels = on
		redraw()
	})
	labelsCheck.SetChecked(true)
	valuesCheck := widget.NewCheck("Values", func(on bool) {
		opts.ShowValueInLabel = on
		redraw()
	})
	valuesCheck.SetChecked(true)

	pieContainer := fyne.NewContainerWithLayout(
		layout.NewFixedGridLayout(fyne.NewSize(size, size)),
		pie,
	)
	win.SetContent(widget.NewVBox(
		widget.NewHBox(labelsCheck, valuesCheck, layout.NewSpacer()),
		pieContainer,
	))

	go func() {
		// the theme can only be swapped once the first content is up.
		for {
			time.Sleep(50 * time.Millisecond)
			if fyne.CurrentApp().Driver().AllWindows()[0].Canvas().Content().Visible() {
				break
			}
		}
		th := prettyfyne.ExampleDracula
		th.TextSize = 13
		fyne.CurrentApp().Settings().SetTheme(th.ToFyneTheme())
	}()

	win.SetMaster()
	win.ShowAndRun()
}

func sampleSegments() []piechart.Segment {
	var pal piechart.Palette
	names := []string{"grants", "fees", "rewards", "other"}
	values := []float64{12.5, 6, 3.5, 2}
	segs := make([]piechart.Segment, len(names))
	for i := range names {
		segs[i] = piechart.Segment{Color: pal.SegmentColor(i), Name: names[i], Value: values[i]}
	}
	return segs
}
