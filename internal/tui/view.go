package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

type cell struct {
	r  rune // 0 marks the second half of a wide rune
	st cellStyle
}

type grid struct {
	cols, rows int
	cells      [][]cell
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for y := range g.cells {
		g.cells[y] = make([]cell, cols)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{r: ' '}
		}
	}
	return g
}

func (g *grid) set(x, y int, r rune, st cellStyle) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	g.cells[y][x] = cell{r: r, st: st}
}

// text writes s from column x, giving wide runes two cells.
func (g *grid) text(x, y int, s string, st cellStyle) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		g.set(x, y, r, st)
		if w == 2 {
			g.set(x+1, y, 0, st)
		}
		x += w
	}
}

func (g *grid) render(b *strings.Builder) {
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		cur := stylePlain
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(styles[cur].Render(run.String()))
				run.Reset()
			}
		}
		for _, c := range row {
			if c.r == 0 {
				continue
			}
			if c.st != cur {
				flush()
				cur = c.st
			}
			run.WriteRune(c.r)
		}
		flush()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.cols <= 1 || m.rows <= 2 {
		return ""
	}
	cols, rows := m.canvasSize()
	g := newGrid(m.cols, m.rows-1)

	for _, conn := range m.doc.Connections {
		from, to := m.ctrl.Item(conn.From), m.ctrl.Item(conn.To)
		if from != nil && to != nil {
			m.drawCurve(g, editor.LinkCurve(*from, *to), glyphLink, styleLink)
		}
	}
	for _, it := range m.ctrl.Items() {
		m.drawItem(g, it)
	}
	if it := m.handleOwner(); it != nil {
		r := m.cells(*it)
		for _, d := range editor.Directions {
			c, row := r.handleCell(d)
			g.set(c, row, glyphHandle, styleHandle)
		}
	}
	if conn, ok := m.ctrl.Connector(); ok {
		m.drawCurve(g, conn.Curve(), glyphGesture, styleGesture)
	}
	if r, ok := m.ctrl.Marquee(); ok {
		drawMarquee(g, r)
	}
	m.drawScrollbars(g, cols, rows)

	var b strings.Builder
	g.render(&b)
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) drawItem(g *grid, it editor.Item) {
	r := m.cells(it)
	st := styleBorder
	label := styleLabel
	switch {
	case m.ctrl.Selected(it.Key):
		st, label = styleSelected, styleLabelSelected
	case m.ctrl.Hover() == it.Key:
		st = styleHover
	}

	for y := r.r0; y <= r.r1; y++ {
		for x := r.c0; x <= r.c1; x++ {
			g.set(x, y, ' ', st)
		}
	}
	if r.r1 > r.r0 {
		for x := r.c0 + 1; x < r.c1; x++ {
			g.set(x, r.r0, firstRune(border.Top), st)
			g.set(x, r.r1, firstRune(border.Bottom), st)
		}
		for y := r.r0 + 1; y < r.r1; y++ {
			g.set(r.c0, y, firstRune(border.Left), st)
			g.set(r.c1, y, firstRune(border.Right), st)
		}
		g.set(r.c0, r.r0, firstRune(border.TopLeft), st)
		g.set(r.c1, r.r0, firstRune(border.TopRight), st)
		g.set(r.c0, r.r1, firstRune(border.BottomLeft), st)
		g.set(r.c1, r.r1, firstRune(border.BottomRight), st)
	} else {
		g.set(r.c0, r.r0, '[', st)
		g.set(r.c1, r.r0, ']', st)
	}

	// Boxes two rows tall carry the label on their top border.
	top, inner := r.r0+1, r.r1-r.r0-1
	if inner <= 0 {
		top, inner = r.r0, 1
	}
	width := float64((r.c1 - r.c0 - 1) * CellWidth)
	opts := append(append([]textlayout.Option{}, m.textOpts...), textlayout.WithMaxLines(inner))
	lines := textlayout.Layout(m.measurer, document.Label(it), width, opts...)
	top += (inner - len(lines)) / 2
	for i, line := range lines {
		g.text(r.c0+1+int(line.Left/CellWidth), top+i, line.Text, label)
	}
}

func (m Model) drawCurve(g *grid, c geom.Curve, glyph rune, st cellStyle) {
	a, b := m.ctrl.ToScreen(c.Start), m.ctrl.ToScreen(c.End)
	steps := int(math.Hypot(b.X-a.X, b.Y-a.Y)/(CellWidth/2)) + 2
	for i := 0; i <= steps; i++ {
		p := m.ctrl.ToScreen(c.At(float64(i) / float64(steps)))
		g.set(int(math.Floor(p.X/CellWidth)), int(math.Floor(p.Y/CellHeight)), glyph, st)
	}
}

func drawMarquee(g *grid, r geom.Rect) {
	c0, r0 := int(math.Floor(r.X/CellWidth)), int(math.Floor(r.Y/CellHeight))
	c1, r1 := int(math.Floor((r.X+r.W)/CellWidth)), int(math.Floor((r.Y+r.H)/CellHeight))
	for x := c0; x <= c1; x++ {
		g.set(x, r0, glyphGesture, styleGesture)
		g.set(x, r1, glyphGesture, styleGesture)
	}
	for y := r0; y <= r1; y++ {
		g.set(c0, y, glyphGesture, styleGesture)
		g.set(c1, y, glyphGesture, styleGesture)
	}
}

// drawScrollbars shows the visible part of the union of content and view.
func (m Model) drawScrollbars(g *grid, cols, rows int) {
	view := geom.RectFromCorners(
		m.ctrl.ToVirtual(geom.Point{}),
		m.ctrl.ToVirtual(geom.Point{X: float64(cols * CellWidth), Y: float64(rows * CellHeight)}),
	)
	total := view
	if content, ok := m.ctrl.ContentBounds(); ok {
		total = total.Union(content)
	}

	x0, x1 := thumb(view.X-total.X, view.W, total.W, cols)
	for x := 0; x < cols; x++ {
		if x >= x0 && x < x1 {
			g.set(x, rows, glyphThumb, styleThumb)
		} else {
			g.set(x, rows, glyphTrack, styleScroll)
		}
	}
	y0, y1 := thumb(view.Y-total.Y, view.H, total.H, rows)
	for y := 0; y < rows; y++ {
		if y >= y0 && y < y1 {
			g.set(cols, y, glyphThumb, styleThumb)
		} else {
			g.set(cols, y, glyphTrack, styleScroll)
		}
	}
}

func thumb(start, size, total float64, cells int) (from, to int) {
	if total <= 0 {
		return 0, cells
	}
	from = int(math.Floor(start / total * float64(cells)))
	to = from + max(1, int(math.Round(size/total*float64(cells))))
	return from, min(to, cells)
}

func (m Model) statusLine() string {
	if m.showHelp {
		return m.help.View(m.keys)
	}
	parts := []string{
		m.ctrl.Mode().String(),
		fmt.Sprintf("%d selected", len(m.ctrl.Selection())),
		fmt.Sprintf("%.0f%%", m.ctrl.Scale()*100),
	}
	if m.ctrl.SpaceDown() {
		parts = append(parts, "pan")
	}
	if m.ctrl.Readonly() {
		parts = append(parts, "readonly")
	}
	line := strings.Join(parts, " · ")
	if m.status != "" {
		line += "  " + m.status
	}
	return statusStyle.Render(runewidth.Truncate(line, m.cols, "…"))
}
