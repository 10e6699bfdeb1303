package textlayout

import (
	"reflect"
	"strings"
	"testing"
)

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestLayoutSingleLineFits(t *testing.T) {
	lines := Layout(FixedWidth(10), "hello", 100)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.Text != "hello" || l.Width != 50 || l.Left != 0 {
		t.Errorf("line = %+v", l)
	}
	if !reflect.DeepEqual(l.Widths, []float64{10, 10, 10, 10, 10}) {
		t.Errorf("Widths = %v", l.Widths)
	}
}

func TestLayoutTruncatesWithMarker(t *testing.T) {
	// Ten equal-width runes, room for exactly five: the marker takes the
	// place of the fifth.
	lines := Layout(FixedWidth(10), "abcdefghij", 50)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Text != "abcd…" {
		t.Errorf("Text = %q, want %q", lines[0].Text, "abcd…")
	}
	if lines[0].Width != 50 {
		t.Errorf("Width = %v, want 50", lines[0].Width)
	}
	if len(lines[0].Widths) != 5 {
		t.Errorf("Widths = %v, want 5 entries", lines[0].Widths)
	}
}

func TestLayoutWrapsLines(t *testing.T) {
	lines := Layout(FixedWidth(10), "abcdefghij", 40, WithMaxLines(3))
	want := []string{"abcd", "efgh", "ij"}
	if got := texts(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %v, want %v", got, want)
	}
}

func TestLayoutTruncatesLastAllowedLine(t *testing.T) {
	lines := Layout(FixedWidth(10), "abcdefghijkl", 40, WithMaxLines(2))
	want := []string{"abcd", "efg…"}
	if got := texts(lines); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %v, want %v", got, want)
	}
}

func TestLayoutTextEndGap(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{
			name: "gap only applies to last line",
			opts: []Option{WithMaxLines(2), WithTextEndGap(20)},
			want: []string{"abcd", "e…"},
		},
		{
			name: "gap shortens single line",
			opts: []Option{WithTextEndGap(10)},
			want: []string{"ab…"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Layout(FixedWidth(10), "abcdefghij", 40, tt.opts...)
			if got := texts(lines); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayoutNoMarker(t *testing.T) {
	lines := Layout(FixedWidth(10), "abcdefghij", 50, WithOverflow(""))
	if lines[0].Text != "abcde" || lines[0].Width != 50 {
		t.Errorf("line = %+v, want abcde/50", lines[0])
	}
}

func TestLayoutCustomMarker(t *testing.T) {
	lines := Layout(FixedWidth(10), "abcdefghij", 50, WithOverflow("..."))
	if lines[0].Text != "ab..." {
		t.Errorf("Text = %q, want %q", lines[0].Text, "ab...")
	}
}

func TestLayoutMarkerWiderThanLine(t *testing.T) {
	// The marker alone does not fit; every rune is dropped, the loop ends.
	lines := Layout(FixedWidth(10), "abcdef", 25, WithOverflow("...."))
	if lines[0].Text != "...." {
		t.Errorf("Text = %q, want marker only", lines[0].Text)
	}
}

func TestLayoutAlign(t *testing.T) {
	tests := []struct {
		align Align
		want  []float64
	}{
		{AlignLeft, []float64{0, 0}},
		{AlignCenter, []float64{0, 5}},
		{AlignRight, []float64{0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			lines := Layout(FixedWidth(10), "abcdefg", 40, WithMaxLines(2), WithAlign(tt.align))
			got := []float64{lines[0].Left, lines[1].Left}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Left = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayoutAlignAppliesToTruncatedLine(t *testing.T) {
	lines := Layout(FixedWidth(10), "abcdefghij", 45, WithAlign(AlignRight))
	if lines[0].Text != "abc…" || lines[0].Left != 5 {
		t.Errorf("line = %+v, want abc… at left 5", lines[0])
	}
}

func TestLayoutDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		opts  []Option
	}{
		{"empty text", "", 100, nil},
		{"zero width", "abc", 0, nil},
		{"negative width", "abc", -5, nil},
		{"zero lines", "abc", 100, []Option{WithMaxLines(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Layout(FixedWidth(10), tt.text, tt.width, tt.opts...)
			if len(lines) != 1 || lines[0].Text != "" || lines[0].Width != 0 {
				t.Errorf("lines = %+v, want one empty line", lines)
			}
		})
	}
}

func TestLayoutIdempotent(t *testing.T) {
	inputs := []string{"abcdefghij", "short", "a much longer label that wraps", "ünïcödé ラベル"}
	for _, in := range inputs {
		for _, maxLines := range []int{1, 2, 3} {
			opts := []Option{WithMaxLines(maxLines)}
			first := Layout(FixedWidth(10), in, 50, opts...)
			second := Layout(FixedWidth(10), Join(first), 50, opts...)
			if !reflect.DeepEqual(texts(first), texts(second)) {
				t.Errorf("Layout(%q, %d) not stable: %v then %v", in, maxLines, texts(first), texts(second))
			}
		}
	}
}

func TestLayoutRunes(t *testing.T) {
	lines := Layout(FixedWidth(10), "日本語テキスト", 30)
	if lines[0].Text != "日本…" {
		t.Errorf("Text = %q, runes must not be split", lines[0].Text)
	}
}

func TestLayoutFontSizeReachesMeasurer(t *testing.T) {
	var sizes []float64
	m := MeasurerFunc(func(s string, size float64) float64 {
		sizes = append(sizes, size)
		return size
	})
	Layout(m, "ab", 100, WithFontSize(16))
	for _, s := range sizes {
		if s != 16 {
			t.Fatalf("measurer called with size %v, want 16", s)
		}
	}
	if len(sizes) != 3 { // overflow marker plus two runes
		t.Errorf("measurer called %d times, want 3", len(sizes))
	}
}

func TestParseAlign(t *testing.T) {
	for in, want := range map[string]Align{"": AlignLeft, "left": AlignLeft, "Center": AlignCenter, "right": AlignRight} {
		got, err := ParseAlign(in)
		if err != nil || got != want {
			t.Errorf("ParseAlign(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAlign("justify"); err == nil || !strings.Contains(err.Error(), "justify") {
		t.Errorf("ParseAlign(justify) error = %v", err)
	}
}

func TestCellMeasurer(t *testing.T) {
	m := CellMeasurer{CellWidth: 10}
	if w := m.MeasureString("ab", 12); w != 20 {
		t.Errorf("MeasureString(ab) = %v, want 20", w)
	}
	if w := m.MeasureString("日", 12); w != 20 {
		t.Errorf("MeasureString(日) = %v, want 20", w)
	}
}

func TestFaceMeasurer(t *testing.T) {
	m := DefaultFaceMeasurer()
	small := m.MeasureString("Hello", 12)
	large := m.MeasureString("Hello", 24)
	if small <= 0 {
		t.Fatalf("MeasureString() = %v, want > 0", small)
	}
	if large <= small {
		t.Errorf("24pt width %v should exceed 12pt width %v", large, small)
	}
	if m.MeasureString("", 12) != 0 {
		t.Error("empty string should have zero width")
	}
	if _, err := NewFaceMeasurer([]byte("not a font")); err == nil {
		t.Error("NewFaceMeasurer() should reject invalid font data")
	}
}
