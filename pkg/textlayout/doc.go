// Package textlayout wraps and truncates short labels to a pixel budget.
//
// [Layout] walks a string one rune at a time and packs runes into lines as
// long as they fit the width. When more lines are allowed the overflowing rune
// starts a new line; on the last allowed line the tail is trimmed until the
// overflow marker fits, the marker is appended and the rest of the input is
// discarded. Each returned [Line] carries its text, total width, the width of
// every glyph and the left offset implied by the alignment.
//
// Widths come from a [Measurer]. Three are provided:
//
//   - [FixedWidth]: every rune has the same advance, handy in tests
//   - [CellMeasurer]: terminal cell widths (East Asian wide runes take two)
//   - [FaceMeasurer]: TrueType advances, Go Regular by default
//
// # Example
//
//	lines := textlayout.Layout(m, "A rather long label", 80,
//	    textlayout.WithMaxLines(2),
//	    textlayout.WithAlign(textlayout.AlignCenter),
//	)
//	for _, l := range lines {
//	    fmt.Println(l.Left, l.Text)
//	}
package textlayout
