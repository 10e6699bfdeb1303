package replay

import (
	"context"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/observability"
)

// Default element size for wheel zoom when the script sets none.
const (
	DefaultWidth  = 1200
	DefaultHeight = 800
)

// tolerance for numeric expectations
const epsilon = 1e-6

// Result is the controller state after a run.
type Result struct {
	Name      string        `json:"name"`
	Steps     int           `json:"steps"`
	Mode      string        `json:"mode"`
	Selection []string      `json:"selection"`
	Offset    geom.Point    `json:"offset"`
	Scale     float64       `json:"scale"`
	Items     []editor.Item `json:"items"`

	connections []document.Connection
}

// Document returns the final items, the script's connections and the final
// viewport as a document.
func (r *Result) Document() *document.Document {
	return &document.Document{
		Items:       r.Items,
		Connections: slices.Clone(r.connections),
		Viewport:    document.Viewport{OffsetX: r.Offset.X, OffsetY: r.Offset.Y, Scale: r.Scale},
	}
}

// Runner executes scripts.
type Runner struct {
	logger *log.Logger
}

// NewRunner returns a runner logging to logger. A nil logger discards.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger}
}

// Run replays s on a fresh controller over a copy of the script items. The
// context is checked between steps. On a failed expectation Run returns the
// state reached so far together with the error.
func (r *Runner) Run(ctx context.Context, s *Script, sizes editor.SizeProvider) (res *Result, err error) {
	start := time.Now()
	observability.Replay().OnReplayStart(ctx, s.Name, len(s.Steps))

	items := make([]editor.Item, len(s.Items))
	copy(items, s.Items)
	c := editor.New(items,
		editor.WithSizes(sizes),
		editor.WithReadonly(s.Readonly),
		editor.WithLogger(r.logger),
	)
	c.SetViewportPos(s.Viewport.OffsetX, s.Viewport.OffsetY)
	if s.Viewport.Scale != 0 {
		c.SetViewportScale(s.Viewport.Scale)
	}

	res = &Result{Name: s.Name, connections: s.Connections}
	defer func() {
		res.Mode = c.Mode().String()
		res.Selection = c.Selection()
		res.Offset = c.Offset()
		res.Scale = c.Scale()
		res.Items = c.Items()
		observability.Replay().OnReplayComplete(ctx, s.Name, res.Steps, time.Since(start), err)
	}()

	r.logger.Info("Replaying script", "name", s.Name, "steps", len(s.Steps))
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := Apply(c, st, s.Viewport.Width, s.Viewport.Height); err != nil {
			return res, errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d", i+1)
		}
		res.Steps = i + 1
		r.logger.Debug("step", "n", i+1, "action", st.Kind, "mode", c.Mode())

		if st.Expect != nil {
			if msg := check(c, st.Expect); msg != "" {
				return res, errors.New(errors.ErrCodeExpectation, "step %d (%s, line %d): %s", i+1, st.Kind, st.Line, msg)
			}
		}
	}
	r.logger.Info("Replay finished", "name", s.Name, "mode", c.Mode(), "selection", len(c.Selection()))
	return res, nil
}

// Apply feeds the action of st to c. width and height size the viewport that
// wheel zoom centers on; non-positive values select DefaultWidth and
// DefaultHeight. The step's expectation is not checked.
func Apply(c *editor.Controller, st Step, width, height float64) error {
	switch st.Kind {
	case KindDown, KindMove, KindUp:
		ev, err := pointerEvent(st.Pointer)
		if err != nil {
			return err
		}
		switch st.Kind {
		case KindDown:
			c.PointerDown(ev)
		case KindMove:
			c.PointerMove(ev)
		default:
			c.PointerUp(ev)
		}
	case KindWheel:
		w, h := width, height
		if w <= 0 || h <= 0 {
			w, h = DefaultWidth, DefaultHeight
		}
		c.Wheel(editor.WheelEvent{
			DeltaX:  st.Wheel.DX,
			DeltaY:  st.Wheel.DY,
			Zoom:    st.Wheel.Zoom,
			OffsetX: st.Wheel.X,
			OffsetY: st.Wheel.Y,
			Width:   w,
			Height:  h,
		})
	case KindKeyDown:
		c.KeyDown(editor.KeyEvent{Code: st.Key})
	case KindKeyUp:
		c.KeyUp(editor.KeyEvent{Code: st.Key})
	case KindReset:
		c.Reset()
	default:
		return fmt.Errorf("unknown action %q", st.Kind)
	}
	return nil
}

func pointerEvent(p Pointer) (editor.PointerEvent, error) {
	target, err := ParseTarget(p.Target)
	if err != nil {
		return editor.PointerEvent{}, err
	}
	button, err := parseButton(p.Button)
	if err != nil {
		return editor.PointerEvent{}, err
	}
	ev := editor.PointerEvent{
		Button:  button,
		X:       p.X,
		Y:       p.Y,
		OffsetX: p.X,
		OffsetY: p.Y,
		Shift:   p.Shift,
		Alt:     p.Alt,
		Ctrl:    p.Ctrl,
		Target:  target,
	}
	if p.OffsetX != nil {
		ev.OffsetX = *p.OffsetX
	}
	if p.OffsetY != nil {
		ev.OffsetY = *p.OffsetY
	}
	return ev, nil
}

// Verify reports an ErrCodeExpectation error describing every mismatch between
// c and e. A nil expectation always holds.
func Verify(c *editor.Controller, e *Expect) error {
	if e == nil {
		return nil
	}
	if msg := check(c, e); msg != "" {
		return errors.New(errors.ErrCodeExpectation, "%s", msg)
	}
	return nil
}

// check returns a description of every mismatch between c and e, or "".
func check(c *editor.Controller, e *Expect) string {
	var diffs []string
	if e.Mode != "" && c.Mode().String() != e.Mode {
		diffs = append(diffs, fmt.Sprintf("mode = %s, want %s", c.Mode(), e.Mode))
	}
	if e.Selection != nil && !slices.Equal(c.Selection(), *e.Selection) {
		diffs = append(diffs, fmt.Sprintf("selection = %v, want %v", c.Selection(), *e.Selection))
	}
	if e.Hover != nil && c.Hover() != *e.Hover {
		diffs = append(diffs, fmt.Sprintf("hover = %q, want %q", c.Hover(), *e.Hover))
	}
	if e.Scale != nil && !near(c.Scale(), *e.Scale) {
		diffs = append(diffs, fmt.Sprintf("scale = %v, want %v", c.Scale(), *e.Scale))
	}
	if e.Offset != nil {
		off := c.Offset()
		if !near(off.X, e.Offset[0]) || !near(off.Y, e.Offset[1]) {
			diffs = append(diffs, fmt.Sprintf("offset = (%v, %v), want (%v, %v)", off.X, off.Y, e.Offset[0], e.Offset[1]))
		}
	}

	keys := make([]string, 0, len(e.Items))
	for k := range e.Items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		it := c.Item(key)
		if it == nil {
			diffs = append(diffs, fmt.Sprintf("item %s missing", key))
			continue
		}
		want := e.Items[key]
		for _, f := range []struct {
			name string
			got  float64
			want *float64
		}{
			{"x", it.X, want.X}, {"y", it.Y, want.Y}, {"w", it.W, want.W}, {"h", it.H, want.H},
		} {
			if f.want != nil && !near(f.got, *f.want) {
				diffs = append(diffs, fmt.Sprintf("%s.%s = %v, want %v", key, f.name, f.got, *f.want))
			}
		}
	}
	return strings.Join(diffs, "; ")
}

func near(a, b float64) bool { return math.Abs(a-b) <= epsilon }
