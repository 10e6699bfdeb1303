package editor

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/observability"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

func box(key string, x, y float64) Item {
	return Item{Key: key, X: x, Y: y, W: 40, H: 40, Type: "box"}
}

func left(t HitTarget, x, y float64) PointerEvent {
	return PointerEvent{Button: ButtonLeft, X: x, Y: y, OffsetX: x, OffsetY: y, Target: t}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewDefaults(t *testing.T) {
	c := New(nil)
	if c.Mode() != ModeIdle {
		t.Errorf("Mode() = %v, want idle", c.Mode())
	}
	if c.Scale() != 1 || c.Offset() != (geom.Point{}) {
		t.Errorf("viewport = %v x%v, want origin x1", c.Offset(), c.Scale())
	}
	if len(c.Selection()) != 0 || c.Readonly() {
		t.Errorf("selection = %v readonly = %v", c.Selection(), c.Readonly())
	}
}

func TestDragScenario(t *testing.T) {
	items := []Item{box("a", 0, 0)}
	c := New(items)

	c.PointerDown(left(OnItem("a"), 10, 10))
	if c.Mode() != ModeMoving {
		t.Fatalf("Mode() = %v, want moving", c.Mode())
	}
	if got := c.Selection(); !slices.Equal(got, []string{"a"}) {
		t.Fatalf("Selection() = %v, want [a]", got)
	}

	c.PointerMove(left(OnItem("a"), 30, 10))
	if items[0].X != 20 || items[0].Y != 0 {
		t.Errorf("a = (%v, %v), want (20, 0)", items[0].X, items[0].Y)
	}

	c.PointerUp(left(OnItem("a"), 30, 10))
	if c.Mode() != ModeIdle {
		t.Errorf("Mode() = %v after up, want idle", c.Mode())
	}
	if items[0].X != 20 {
		t.Errorf("a.x = %v after up, want 20", items[0].X)
	}
}

func TestMoveUsesSnapshot(t *testing.T) {
	items := []Item{box("a", 0, 0)}
	c := New(items)
	c.PointerDown(left(OnItem("a"), 0, 0))
	for x := 1.0; x <= 44; x++ {
		c.PointerMove(left(HitTarget{}, x, 0))
	}
	if items[0].X != 40 {
		t.Errorf("a.x = %v, want 40", items[0].X)
	}
}

func TestMoveDividesByScale(t *testing.T) {
	items := []Item{box("a", 0, 0)}
	c := New(items)
	c.SetViewportScale(2)
	c.PointerDown(left(OnItem("a"), 0, 0))
	c.PointerMove(left(OnItem("a"), 80, 40))
	if items[0].X != 40 || items[0].Y != 20 {
		t.Errorf("a = (%v, %v), want (40, 20)", items[0].X, items[0].Y)
	}
}

func TestMoveNegativeHalfStep(t *testing.T) {
	items := []Item{box("a", 0, 0)}
	c := New(items)
	c.PointerDown(left(OnItem("a"), 100, 100))
	c.PointerMove(left(OnItem("a"), 95, 85))
	if items[0].X != 0 || items[0].Y != -10 {
		t.Errorf("a = (%v, %v), want (0, -10)", items[0].X, items[0].Y)
	}
}

func TestMultiMovePreservesOffsets(t *testing.T) {
	items := []Item{box("a", 0, 0), box("b", 100, 50)}
	c := New(items)

	for _, key := range []string{"a", "b"} {
		ev := left(OnItem(key), 0, 0)
		ev.Shift = true
		c.PointerDown(ev)
		c.PointerUp(ev)
	}
	if got := c.Selection(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Selection() = %v, want [a b]", got)
	}

	c.PointerDown(left(OnItem("a"), 0, 0))
	if got := c.Selection(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Selection() after plain click = %v, want [a b]", got)
	}
	c.PointerMove(left(OnItem("a"), 33, -17))

	if items[0].X != 30 || items[0].Y != -20 {
		t.Errorf("a = (%v, %v), want (30, -20)", items[0].X, items[0].Y)
	}
	if dx, dy := items[1].X-items[0].X, items[1].Y-items[0].Y; dx != 100 || dy != 50 {
		t.Errorf("b - a = (%v, %v), want (100, 50)", dx, dy)
	}
}

func TestClickCollapsesSelection(t *testing.T) {
	items := []Item{box("a", 0, 0), box("b", 100, 0), box("c", 200, 0)}
	c := New(items)
	for _, key := range []string{"a", "b"} {
		ev := left(OnItem(key), 0, 0)
		ev.Shift = true
		c.PointerDown(ev)
		c.PointerUp(ev)
	}
	c.PointerDown(left(OnItem("c"), 0, 0))
	if got := c.Selection(); !slices.Equal(got, []string{"c"}) {
		t.Errorf("Selection() = %v, want [c]", got)
	}
}

func TestShiftToggle(t *testing.T) {
	c := New([]Item{box("a", 0, 0), box("b", 100, 0)})
	click := func(key string, shift bool) {
		ev := left(OnItem(key), 0, 0)
		ev.Shift = shift
		c.PointerDown(ev)
		if c.Mode() != ModeMoving {
			t.Fatalf("Mode() = %v, want moving", c.Mode())
		}
		c.PointerUp(ev)
	}

	click("a", false)
	click("b", true)
	click("a", true)
	if got := c.Selection(); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Selection() = %v, want [b]", got)
	}
}

func TestResizeDirections(t *testing.T) {
	tests := []struct {
		dir  Direction
		want geom.Rect
	}{
		{DirE, geom.Rect{X: 0, Y: 0, W: 120, H: 100}},
		{DirS, geom.Rect{X: 0, Y: 0, W: 100, H: 120}},
		{DirSE, geom.Rect{X: 0, Y: 0, W: 120, H: 120}},
		{DirW, geom.Rect{X: 20, Y: 0, W: 80, H: 100}},
		{DirN, geom.Rect{X: 0, Y: 20, W: 100, H: 80}},
		{DirNW, geom.Rect{X: 20, Y: 20, W: 80, H: 80}},
		{DirNE, geom.Rect{X: 0, Y: 20, W: 120, H: 80}},
		{DirSW, geom.Rect{X: 20, Y: 0, W: 80, H: 120}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			items := []Item{{Key: "a", W: 100, H: 100, Type: "box"}}
			c := New(items)
			c.PointerDown(left(OnHandle("a", tt.dir), 0, 0))
			if c.Mode() != ModeResizing {
				t.Fatalf("Mode() = %v, want resizing", c.Mode())
			}
			c.PointerMove(left(HitTarget{}, 20, 20))
			if got := items[0].Bounds(); got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResizeNeverBelowMin(t *testing.T) {
	sizes := FixedSizes{Min: Size{W: 50, H: 30}, Default: Size{W: 100, H: 60}}
	for _, dir := range Directions {
		for d := -300.0; d <= 300; d += 7 {
			items := []Item{{Key: "a", X: 100, Y: 100, W: 100, H: 60}}
			c := New(items, WithSizes(sizes))
			c.PointerDown(left(OnHandle("a", dir), 0, 0))
			c.PointerMove(left(HitTarget{}, d, -d/2))
			if items[0].W < 50 || items[0].H < 30 {
				t.Fatalf("%s by %v: size = %vx%v, below minimum", dir, d, items[0].W, items[0].H)
			}
			c.PointerUp(PointerEvent{})
		}
	}
}

func TestResizeAtMinimumKeepsPosition(t *testing.T) {
	items := []Item{box("a", 0, 0)}
	c := New(items)
	c.PointerDown(left(OnHandle("a", DirW), 0, 0))
	c.PointerMove(left(HitTarget{}, 30, 0))
	if items[0].W != 40 || items[0].X != 0 {
		t.Errorf("a = x %v w %v, want x 0 w 40", items[0].X, items[0].W)
	}
}

func TestResizeDividesByScale(t *testing.T) {
	items := []Item{{Key: "a", W: 100, H: 100}}
	c := New(items)
	c.SetViewportScale(2)
	c.PointerDown(left(OnHandle("a", DirE), 0, 0))
	c.PointerMove(left(HitTarget{}, 40, 0))
	if items[0].W != 120 {
		t.Errorf("w = %v, want 120", items[0].W)
	}
}

func TestResizeCollapsesSelection(t *testing.T) {
	c := New([]Item{box("a", 0, 0), box("b", 100, 0)})
	ev := left(OnItem("a"), 0, 0)
	c.PointerDown(ev)
	c.PointerUp(ev)
	ev.Shift = true
	ev.Target = OnItem("b")
	c.PointerDown(ev)
	c.PointerUp(ev)

	c.PointerDown(left(OnHandle("b", DirSE), 0, 0))
	if got := c.Selection(); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Selection() = %v, want [b]", got)
	}
}

func TestHandleEdgeCases(t *testing.T) {
	c := New([]Item{box("a", 0, 0)})

	c.PointerDown(left(OnHandle("a", "up"), 0, 0))
	if c.Mode() != ModeIdle {
		t.Errorf("invalid direction: Mode() = %v, want idle", c.Mode())
	}

	c.PointerDown(left(OnHandle("zz", DirE), 0, 0))
	if c.Mode() != ModeIdle || len(c.Selection()) != 0 {
		t.Errorf("unknown item: Mode() = %v selection = %v", c.Mode(), c.Selection())
	}

	c.PointerDown(left(OnItem("zz"), 0, 0))
	if c.Mode() != ModeIdle {
		t.Errorf("unknown item body: Mode() = %v, want idle", c.Mode())
	}
}

func TestMarqueeIndependentOfCorner(t *testing.T) {
	items := []Item{box("A", 10, 10), box("B", 60, 10), box("C", 200, 200)}
	corners := []struct{ from, to geom.Point }{
		{geom.Point{X: 0, Y: 0}, geom.Point{X: 120, Y: 70}},
		{geom.Point{X: 120, Y: 70}, geom.Point{X: 0, Y: 0}},
		{geom.Point{X: 0, Y: 70}, geom.Point{X: 120, Y: 0}},
		{geom.Point{X: 120, Y: 0}, geom.Point{X: 0, Y: 70}},
	}

	for _, cc := range corners {
		c := New(items)
		c.PointerDown(left(HitTarget{}, cc.from.X, cc.from.Y))
		if c.Mode() != ModeSelecting {
			t.Fatalf("Mode() = %v, want selecting", c.Mode())
		}
		c.PointerMove(left(HitTarget{}, cc.to.X, cc.to.Y))

		if got := c.Selection(); !slices.Equal(got, []string{"A", "B"}) {
			t.Errorf("drag %v -> %v: Selection() = %v, want [A B]", cc.from, cc.to, got)
		}
		r, ok := c.Marquee()
		if !ok || r != (geom.Rect{X: 0, Y: 0, W: 120, H: 70}) {
			t.Errorf("Marquee() = %+v, %v", r, ok)
		}
		c.PointerUp(PointerEvent{})
		if _, ok := c.Marquee(); ok {
			t.Error("Marquee() still active after up")
		}
	}
}

func TestMarqueeExcludesPartialItems(t *testing.T) {
	c := New([]Item{box("A", 10, 10), box("B", 60, 10)})
	c.PointerDown(left(HitTarget{}, 0, 0))
	c.PointerMove(left(HitTarget{}, 80, 60))
	if got := c.Selection(); !slices.Equal(got, []string{"A"}) {
		t.Errorf("Selection() = %v, want [A]", got)
	}
}

func TestMarqueeUsesScreenCoordinates(t *testing.T) {
	c := New([]Item{box("A", 10, 10)})
	c.SetViewportScale(2)
	c.SetViewportPos(100, 0)
	c.PointerDown(left(HitTarget{}, 110, 10))
	c.PointerMove(left(HitTarget{}, 210, 110))
	if got := c.Selection(); !slices.Equal(got, []string{"A"}) {
		t.Errorf("Selection() = %v, want [A]", got)
	}
}

func TestCanvasClickClearsSelectionUnlessShift(t *testing.T) {
	c := New([]Item{box("a", 0, 0)})
	ev := left(OnItem("a"), 0, 0)
	c.PointerDown(ev)
	c.PointerUp(ev)

	canvas := left(HitTarget{}, 300, 300)
	canvas.Shift = true
	c.PointerDown(canvas)
	if got := c.Selection(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("shift canvas click: Selection() = %v, want [a]", got)
	}
	c.PointerUp(canvas)

	canvas.Shift = false
	c.PointerDown(canvas)
	if got := c.Selection(); len(got) != 0 {
		t.Errorf("canvas click: Selection() = %v, want empty", got)
	}
}

func TestConnecting(t *testing.T) {
	c := New([]Item{box("a", 0, 0), box("b", 100, 0)})
	c.SetViewportPos(10, 10)

	ev := left(OnItem("a"), 0, 0)
	ev.Alt = true
	c.PointerDown(ev)
	if c.Mode() != ModeConnecting {
		t.Fatalf("Mode() = %v, want connecting", c.Mode())
	}
	if got := c.Selection(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Selection() = %v, want [a]", got)
	}

	c.PointerMove(PointerEvent{OffsetX: 100, OffsetY: 60})
	conn, ok := c.Connector()
	if !ok {
		t.Fatal("Connector() not active")
	}
	if conn.From != "a" || conn.Start != (geom.Point{X: 20, Y: 20}) || conn.End != (geom.Point{X: 90, Y: 50}) {
		t.Errorf("Connector() = %+v", conn)
	}
	if got, want := conn.Path(), "20 20 55 20 55 50 90 50"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	c.PointerUp(PointerEvent{})
	if _, ok := c.Connector(); ok || c.Mode() != ModeIdle {
		t.Errorf("connector still active after up, mode %v", c.Mode())
	}
}

func TestWalking(t *testing.T) {
	c := New([]Item{box("a", 0, 0)})
	c.SetViewportScale(2)
	c.PointerDown(PointerEvent{Button: ButtonMiddle, X: 100, Y: 100, Target: OnItem("a")})
	if c.Mode() != ModeWalking {
		t.Fatalf("Mode() = %v, want walking", c.Mode())
	}
	c.PointerMove(PointerEvent{X: 130, Y: 90})
	if c.Offset() != (geom.Point{X: 30, Y: -10}) {
		t.Errorf("Offset() = %v, want (30, -10)", c.Offset())
	}

	// releasing space does not end a middle-button walk
	c.KeyUp(KeyEvent{Code: KeySpace})
	if c.Mode() != ModeWalking {
		t.Errorf("Mode() = %v, want walking", c.Mode())
	}
	c.PointerUp(PointerEvent{})
}

func TestSpaceWalk(t *testing.T) {
	items := []Item{box("a", 0, 0)}
	c := New(items)
	c.KeyDown(KeyEvent{Code: KeySpace})
	c.PointerDown(left(OnItem("a"), 0, 0))
	if c.Mode() != ModeWalking {
		t.Fatalf("Mode() = %v, want walking", c.Mode())
	}
	c.PointerMove(left(OnItem("a"), 50, 0))
	if items[0].X != 0 || c.Offset().X != 50 {
		t.Errorf("a.x = %v offset = %v", items[0].X, c.Offset())
	}
	c.KeyUp(KeyEvent{Code: KeySpace})
	if c.Mode() != ModeIdle {
		t.Errorf("Mode() = %v after space up, want idle", c.Mode())
	}
}

func TestScrollbars(t *testing.T) {
	c := New(nil)
	c.SetViewportScale(2)
	c.PointerDown(left(HitTarget{Kind: HitScrollbarX}, 100, 0))
	c.PointerMove(left(HitTarget{}, 110, 0))
	if c.Offset().X != -40 {
		t.Errorf("offset.x = %v, want -40", c.Offset().X)
	}
	c.PointerUp(PointerEvent{})

	c.SetViewportScale(0.5)
	c.PointerDown(left(HitTarget{Kind: HitScrollbarY}, 0, 100))
	c.PointerMove(left(HitTarget{}, 0, 120))
	if c.Offset().Y != -20 {
		t.Errorf("offset.y = %v, want -20", c.Offset().Y)
	}
}

func TestWheelZoom(t *testing.T) {
	c := New(nil)
	c.Wheel(WheelEvent{DeltaY: -100, Zoom: true, OffsetX: 100, OffsetY: 100, Width: 800, Height: 600})
	if !near(c.Scale(), 1.1) {
		t.Errorf("Scale() = %v, want 1.1", c.Scale())
	}
	if v := c.ToVirtual(geom.Point{X: 100, Y: 100}); !near(v.X, 100) || !near(v.Y, 100) {
		t.Errorf("point under pointer moved to %v", v)
	}
}

func TestWheelZoomClamped(t *testing.T) {
	deltas := []float64{-100000, -1000, -1, 0, 1, 1000, 100000, math.NaN()}
	c := New(nil)
	for _, d := range deltas {
		for i := 0; i < 3; i++ {
			c.Wheel(WheelEvent{DeltaY: d, Zoom: true, Width: 100, Height: 100})
			if s := c.Scale(); s < MinScale || s > MaxScale {
				t.Fatalf("delta %v: Scale() = %v out of range", d, s)
			}
		}
	}
}

func TestWheelPan(t *testing.T) {
	c := New(nil)
	c.Wheel(WheelEvent{DeltaX: 5, DeltaY: 7})
	if c.Offset() != (geom.Point{X: -5, Y: -7}) || c.Scale() != 1 {
		t.Errorf("viewport = %v x%v", c.Offset(), c.Scale())
	}
}

func TestPointerDownIgnoredWhileActive(t *testing.T) {
	c := New([]Item{box("a", 0, 0)})
	c.PointerDown(left(OnItem("a"), 0, 0))
	c.PointerDown(left(HitTarget{}, 300, 300))
	if c.Mode() != ModeMoving {
		t.Errorf("Mode() = %v, want moving", c.Mode())
	}
	if got := c.Selection(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Selection() = %v, want [a]", got)
	}
}

func TestReadonly(t *testing.T) {
	items := []Item{box("a", 0, 0)}
	c := New(items, WithReadonly(true))
	c.PointerDown(left(OnItem("a"), 0, 0))
	c.PointerMove(left(OnItem("a"), 50, 0))
	if c.Mode() != ModeIdle || len(c.Selection()) != 0 || items[0].X != 0 || c.Hover() != "" {
		t.Errorf("readonly controller reacted: mode %v selection %v", c.Mode(), c.Selection())
	}
	c.Wheel(WheelEvent{DeltaX: 10})
	if c.Offset().X != -10 {
		t.Errorf("readonly wheel: offset = %v", c.Offset())
	}
}

func TestHover(t *testing.T) {
	c := New([]Item{box("a", 0, 0)})
	c.PointerMove(left(OnItem("a"), 5, 5))
	if c.Hover() != "a" {
		t.Errorf("Hover() = %q, want a", c.Hover())
	}
	c.PointerDown(left(OnItem("a"), 5, 5))
	c.PointerMove(left(OnItem("a"), 15, 5))
	if c.Hover() != "" {
		t.Errorf("Hover() while moving = %q, want empty", c.Hover())
	}
	c.PointerUp(PointerEvent{})
	c.PointerMove(left(HitTarget{}, 300, 5))
	if c.Hover() != "" {
		t.Errorf("Hover() over canvas = %q", c.Hover())
	}
}

func TestReset(t *testing.T) {
	c := New([]Item{box("a", 0, 0)})
	c.KeyDown(KeyEvent{Code: KeySpace})
	c.KeyUp(KeyEvent{Code: "KeyA"})
	c.PointerDown(left(OnHandle("a", DirE), 0, 0))
	c.Reset()
	if c.Mode() != ModeIdle || len(c.Selection()) != 0 || c.SpaceDown() {
		t.Errorf("after Reset: mode %v selection %v space %v", c.Mode(), c.Selection(), c.SpaceDown())
	}
}

func TestSetItemsDropsStaleSelection(t *testing.T) {
	c := New([]Item{box("a", 0, 0), box("b", 100, 0)})
	ev := left(OnItem("b"), 0, 0)
	c.PointerDown(ev)
	c.SetItems([]Item{box("a", 0, 0)})
	if c.Mode() != ModeIdle || len(c.Selection()) != 0 {
		t.Errorf("mode %v selection %v", c.Mode(), c.Selection())
	}
}

func TestSurface(t *testing.T) {
	c := New([]Item{box("a", 0, 0)})
	if _, err := c.Surface(); !errors.Is(err, errors.ErrCodeSurfaceNotInitialized) {
		t.Errorf("Surface() error = %v", err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("MustSurface() did not panic")
			}
		}()
		c.MustSurface()
	}()
	if _, err := c.LabelLayout("a", "x"); err == nil {
		t.Error("LabelLayout() without surface succeeded")
	}

	c.SetSurface(textlayout.FixedWidth(10))
	lines, err := c.LabelLayout("a", "abcdefgh")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Text != "abc…" {
		t.Errorf("LabelLayout() = %+v", lines)
	}
	if _, err := c.LabelLayout("zz", "x"); !errors.Is(err, errors.ErrCodeUnknownKey) {
		t.Errorf("unknown key error = %v", err)
	}
}

func TestViewFull(t *testing.T) {
	c := New([]Item{{Key: "a", W: 100, H: 100}})
	c.ViewFull(240, 240)
	if c.Scale() != 2 || c.Offset() != (geom.Point{X: 20, Y: 20}) {
		t.Errorf("viewport = %v x%v, want (20,20) x2", c.Offset(), c.Scale())
	}

	empty := New(nil)
	empty.SetViewportPos(5, 5)
	empty.ViewFull(100, 100)
	if empty.Scale() != 1 || empty.Offset() != (geom.Point{}) {
		t.Errorf("empty ViewFull = %v x%v", empty.Offset(), empty.Scale())
	}
}

func TestPlacement(t *testing.T) {
	c := New(nil)
	got := c.Placement("box", 105, 57)
	if got != (geom.Rect{X: 90, Y: 40, W: 40, H: 40}) {
		t.Errorf("Placement() = %+v", got)
	}
}

func TestLinkPath(t *testing.T) {
	tests := []struct {
		name     string
		from, to Item
		want     string
	}{
		{"right", box("a", 0, 0), box("b", 100, 0), "40 20 70 20 70 20 100 20"},
		{"left", box("a", 100, 0), box("b", 0, 0), "100 20 70 20 70 20 40 20"},
		{"down", box("a", 0, 0), box("b", 0, 100), "20 40 20 70 20 70 20 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinkPath(tt.from, tt.to); got != tt.want {
				t.Errorf("LinkPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

type recordingHooks struct {
	modes      []string
	selections []int
}

func (r *recordingHooks) OnModeChange(from, to string) { r.modes = append(r.modes, from+">"+to) }
func (r *recordingHooks) OnSelectionChange(n int)      { r.selections = append(r.selections, n) }

func TestEditorHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetEditorHooks(rec)
	defer observability.Reset()

	c := New([]Item{box("a", 0, 0)})
	c.PointerDown(left(OnItem("a"), 0, 0))
	c.PointerUp(PointerEvent{})

	if !slices.Equal(rec.modes, []string{"idle>moving", "moving>idle"}) {
		t.Errorf("modes = %v", rec.modes)
	}
	if !slices.Equal(rec.selections, []int{1}) {
		t.Errorf("selections = %v", rec.selections)
	}
}

func TestParseDirectionAndMode(t *testing.T) {
	if d, err := ParseDirection(" NE "); err != nil || d != DirNE {
		t.Errorf("ParseDirection() = %v, %v", d, err)
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(up) succeeded")
	}
	for m := ModeIdle; m <= ModeScrollingY; m++ {
		if got, ok := ParseMode(m.String()); !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
}

func TestHandlePoint(t *testing.T) {
	it := Item{X: 10, Y: 20, W: 100, H: 40}
	tests := map[Direction]geom.Point{
		DirN:  {X: 60, Y: 20},
		DirNE: {X: 110, Y: 20},
		DirE:  {X: 110, Y: 40},
		DirSE: {X: 110, Y: 60},
		DirS:  {X: 60, Y: 60},
		DirSW: {X: 10, Y: 60},
		DirW:  {X: 10, Y: 40},
		DirNW: {X: 10, Y: 20},
	}
	for d, want := range tests {
		if got := HandlePoint(it, d); got != want {
			t.Errorf("HandlePoint(%s) = %v, want %v", d, got, want)
		}
	}
}
