package tui

import (
	"math"

	"github.com/matzehuels/sketchboard/pkg/editor"
)

// cellRect is an inclusive range of cells.
type cellRect struct {
	c0, r0, c1, r1 int
}

func (r cellRect) contains(c, row int) bool {
	return c >= r.c0 && c <= r.c1 && row >= r.r0 && row <= r.r1
}

// cells returns the cells covered by an item on screen.
func (m Model) cells(it editor.Item) cellRect {
	tl := m.ctrl.ToScreen(it.Bounds().Min())
	br := m.ctrl.ToScreen(it.Bounds().Max())
	r := cellRect{
		c0: int(math.Floor(tl.X / CellWidth)),
		r0: int(math.Floor(tl.Y / CellHeight)),
		c1: int(math.Ceil(br.X/CellWidth)) - 1,
		r1: int(math.Ceil(br.Y/CellHeight)) - 1,
	}
	r.c1 = max(r.c1, r.c0)
	r.r1 = max(r.r1, r.r0)
	return r
}

// handleCell is the border cell of a resize handle.
func (r cellRect) handleCell(d editor.Direction) (c, row int) {
	c, row = (r.c0+r.c1)/2, (r.r0+r.r1)/2
	switch d {
	case editor.DirN, editor.DirNE, editor.DirNW:
		row = r.r0
	case editor.DirS, editor.DirSE, editor.DirSW:
		row = r.r1
	}
	switch d {
	case editor.DirW, editor.DirNW, editor.DirSW:
		c = r.c0
	case editor.DirE, editor.DirNE, editor.DirSE:
		c = r.c1
	}
	return c, row
}

// handleOwner returns the item showing resize handles, if any.
func (m Model) handleOwner() *editor.Item {
	sel := m.ctrl.Selection()
	if len(sel) != 1 || m.ctrl.Readonly() {
		return nil
	}
	return m.ctrl.Item(sel[0])
}

// hitAt resolves what lies under a cell: scrollbars, then the handles of
// the selected item, then items from the top of the stack down.
func (m Model) hitAt(c, row int) editor.HitTarget {
	cols, rows := m.canvasSize()
	switch {
	case row > rows:
		return editor.HitTarget{Kind: editor.HitNone}
	case row == rows:
		if c < cols {
			return editor.HitTarget{Kind: editor.HitScrollbarX}
		}
		return editor.HitTarget{Kind: editor.HitNone}
	case c >= cols:
		return editor.HitTarget{Kind: editor.HitScrollbarY}
	}

	if it := m.handleOwner(); it != nil {
		r := m.cells(*it)
		for _, d := range editor.Directions {
			if hc, hr := r.handleCell(d); hc == c && hr == row {
				return editor.OnHandle(it.Key, d)
			}
		}
	}

	items := m.ctrl.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if m.cells(items[i]).contains(c, row) {
			return editor.OnItem(items[i].Key)
		}
	}
	return editor.HitTarget{}
}
