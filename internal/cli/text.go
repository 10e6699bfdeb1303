package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// textOpts holds the flags of the text command. Zero values defer to config.
type textOpts struct {
	width    float64
	maxLines int
	align    string
	overflow string
	gap      float64
	fontSize float64
	cells    bool // measure in terminal cells; width is then a cell count
	json     bool
}

func (c *CLI) textCommand() *cobra.Command {
	opts := textOpts{width: 100}

	cmd := &cobra.Command{
		Use:   "text [string]",
		Short: "Lay out a label and print its lines",
		Long: `Text wraps a label into a box of the given width using the same layout
engine as the renderers, and prints the resulting lines with their widths.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layoutOpts, err := c.textLayoutOptions(cmd, opts)
			if err != nil {
				return err
			}
			var m textlayout.Measurer = textlayout.DefaultFaceMeasurer()
			if opts.cells {
				m = textlayout.CellMeasurer{CellWidth: 1}
			}
			lines := textlayout.Layout(m, args[0], opts.width, layoutOpts...)
			loggerFromContext(cmd.Context()).Debug("Laid out text", "runes", len([]rune(args[0])), "lines", len(lines))

			if opts.json {
				return writeLinesJSON(cmd.OutOrStdout(), lines)
			}
			writeLines(cmd.OutOrStdout(), lines, opts.width)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "box width in pixels (cells with --cells)")
	cmd.Flags().IntVar(&opts.maxLines, "max-lines", 0, "maximum number of lines (default from config)")
	cmd.Flags().StringVar(&opts.align, "align", "", "alignment: left, center, right (default from config)")
	cmd.Flags().StringVar(&opts.overflow, "overflow", "", "overflow marker; empty disables it (default from config)")
	cmd.Flags().Float64Var(&opts.gap, "gap", 0, "gap kept free after the last line (default from config)")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "font size (default from config)")
	cmd.Flags().BoolVar(&opts.cells, "cells", false, "measure in terminal cells instead of font advances")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print lines as JSON")

	return cmd
}

// textLayoutOptions starts from the configured options and appends the flags
// the user actually set, so later options win.
func (c *CLI) textLayoutOptions(cmd *cobra.Command, opts textOpts) ([]textlayout.Option, error) {
	if opts.width <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "width must be positive")
	}
	out := c.cfg().TextOptions()
	flags := cmd.Flags()
	if flags.Changed("max-lines") {
		out = append(out, textlayout.WithMaxLines(opts.maxLines))
	}
	if flags.Changed("align") {
		a, err := textlayout.ParseAlign(opts.align)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "--align")
		}
		out = append(out, textlayout.WithAlign(a))
	}
	if flags.Changed("overflow") {
		out = append(out, textlayout.WithOverflow(opts.overflow))
	}
	if flags.Changed("gap") {
		out = append(out, textlayout.WithTextEndGap(opts.gap))
	}
	if flags.Changed("font-size") {
		out = append(out, textlayout.WithFontSize(opts.fontSize))
	}
	return out, nil
}

// writeLines prints each line between bars, padded to its left offset.
func writeLines(w io.Writer, lines []textlayout.Line, width float64) {
	for i, l := range lines {
		fmt.Fprintf(w, "%s %s%s %s\n",
			StyleDim.Render(fmt.Sprintf("%2d", i+1)),
			StyleDim.Render("│"),
			StyleValue.Render(l.Text),
			StyleDim.Render(fmt.Sprintf("│ %s/%s left %s",
				geom.FormatNumber(l.Width), geom.FormatNumber(width), geom.FormatNumber(l.Left))))
	}
}

func writeLinesJSON(w io.Writer, lines []textlayout.Line) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Lines []textlayout.Line `json:"lines"`
		Text  string            `json:"text"`
		Cells int               `json:"cells"`
	}{lines, textlayout.Join(lines), runewidth.StringWidth(textlayout.Join(lines))})
}
