// Command piechart renders a TOML chart description to a PNG or SVG file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/frameloss/piechart"
)

type renderOpts struct {
	output string  // output file path; derived from the input name when empty
	format string  // "png" or "svg"
	width  int     // viewport width in pixels
	height int     // viewport height in pixels
	labels bool    // draw segment labels
	values bool    // include the segment value in each label
	size   float64 // label font size in points
}

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

func execute() error {
	var verbose bool
	opts := renderOpts{format: "png", width: 600, height: 600}

	root := &cobra.Command{
		Use:          "piechart [chart.toml]",
		Short:        "Render a pie chart description to PNG or SVG",
		Long:         `piechart reads a TOML chart description (segments with names, values and optional hex colors, plus display options) and renders it as a pie chart image.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return run(logger, cmd, args[0], &opts)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	root.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png or svg")
	root.Flags().IntVar(&opts.width, "width", opts.width, "chart width in pixels")
	root.Flags().IntVar(&opts.height, "height", opts.height, "chart height in pixels")
	root.Flags().BoolVar(&opts.labels, "labels", false, "draw segment labels")
	root.Flags().BoolVar(&opts.values, "values", false, "include values in labels")
	root.Flags().Float64Var(&opts.size, "font-size", 0, "label font size in points")

	return root.Execute()
}

func run(logger *log.Logger, cmd *cobra.Command, path string, opts *renderOpts) error {
	start := time.Now()

	cf, err := piechart.LoadChartFile(path)
	if err != nil {
		logger.Error("load chart", "err", err)
		return err
	}
	logger.Debug("chart loaded", "segments", len(cf.Segments))

	// Flags that were set explicitly win over the chart file.
	if cmd.Flags().Changed("width") || cf.Width <= 0 {
		cf.Width = opts.width
	}
	if cmd.Flags().Changed("height") || cf.Height <= 0 {
		cf.Height = opts.height
	}
	if cmd.Flags().Changed("labels") {
		cf.Labels = opts.labels
	}
	if cmd.Flags().Changed("values") {
		cf.Values = opts.values
	}
	if cmd.Flags().Changed("font-size") {
		cf.FontSize = opts.size
	}

	display, err := cf.Options()
	if err != nil {
		logger.Error("display options", "err", err)
		return err
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + opts.format
	}
	f, err := os.Create(out)
	if err != nil {
		logger.Error("create output", "err", err)
		return err
	}
	defer f.Close()

	segments := cf.ToSegments()
	switch opts.format {
	case "png":
		err = piechart.EncodePNG(f, segments, display, cf.Width, cf.Height)
	case "svg":
		err = piechart.EncodeSVG(f, segments, display, cf.Width, cf.Height)
	default:
		err = fmt.Errorf("unknown format %q (want png or svg)", opts.format)
	}
	if err != nil {
		logger.Error("render", "err", err)
		return err
	}

	logger.Info(fmt.Sprintf("wrote %s (%s)", out, time.Since(start).Round(time.Millisecond)))
	return nil
}
