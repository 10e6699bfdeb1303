package editor

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/observability"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// Viewport and grid constants.
const (
	MinScale = 0.2
	MaxScale = 2.0

	// ZoomStep is the scale change per wheel delta unit.
	ZoomStep = 0.001

	// MoveGrid snaps positions, SizeGrid snaps resized dimensions.
	MoveGrid = 10
	SizeGrid = 20
)

// Controller is the interaction state machine of one canvas. It is not safe
// for concurrent use; the host calls it from its single event loop.
type Controller struct {
	items    []Item
	index    map[string]int
	sizes    SizeProvider
	readonly bool
	logger   *log.Logger
	surface  textlayout.Measurer

	offset    geom.Point
	scale     float64
	mode      Mode
	spaceDown bool
	selection []string
	hover     string

	// gesture state, valid while mode != ModeIdle
	dragStart   geom.Point
	startOffset geom.Point
	walkBySpace bool
	handle      Direction
	snapshot    map[string]geom.Rect
	connFrom    string
	connStart   geom.Point
	connEnd     geom.Point
	marqueeFrom geom.Point
	marqueeTo   geom.Point
}

// Option configures a [Controller].
type Option func(*Controller)

// WithSizes sets the per-type size provider. The default is [FixedSizes].
func WithSizes(p SizeProvider) Option {
	return func(c *Controller) {
		if p != nil {
			c.sizes = p
		}
	}
}

// WithReadonly starts the controller in read-only mode.
func WithReadonly(readonly bool) Option {
	return func(c *Controller) { c.readonly = readonly }
}

// WithLogger sets the logger used for debug output of mode transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSurface registers the text measurement surface.
func WithSurface(m textlayout.Measurer) Option {
	return func(c *Controller) { c.surface = m }
}

// New returns a controller over items. The slice is kept, not copied:
// gestures mutate its elements in place.
func New(items []Item, opts ...Option) *Controller {
	c := &Controller{
		sizes:  FixedSizes{},
		logger: log.New(io.Discard),
		scale:  1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.SetItems(items)
	return c
}

// SetItems replaces the item slice and ends any gesture in progress.
// Selected keys that no longer exist are dropped.
func (c *Controller) SetItems(items []Item) {
	c.endGesture()
	c.items = items
	c.index = make(map[string]int, len(items))
	for i, it := range items {
		if _, dup := c.index[it.Key]; !dup {
			c.index[it.Key] = i
		}
	}
	kept := c.selection[:0:0]
	for _, k := range c.selection {
		if _, ok := c.index[k]; ok {
			kept = append(kept, k)
		}
	}
	c.setSelection(kept)
}

// Items returns the live item slice.
func (c *Controller) Items() []Item { return c.items }

// Item returns a pointer to the item with key, or nil.
func (c *Controller) Item(key string) *Item {
	i, ok := c.index[key]
	if !ok {
		return nil
	}
	return &c.items[i]
}

func (c *Controller) Offset() geom.Point { return c.offset }
func (c *Controller) Scale() float64     { return c.scale }
func (c *Controller) Mode() Mode         { return c.mode }
func (c *Controller) Hover() string      { return c.hover }
func (c *Controller) Readonly() bool     { return c.readonly }

// SetReadonly toggles read-only mode. Read-only controllers ignore pointer
// presses and moves but still pan and zoom on wheel input.
func (c *Controller) SetReadonly(readonly bool) { c.readonly = readonly }

// Sizes returns the size provider.
func (c *Controller) Sizes() SizeProvider { return c.sizes }

// Selection returns the selected keys in click order.
func (c *Controller) Selection() []string { return slices.Clone(c.selection) }

// Selected reports whether key is selected.
func (c *Controller) Selected(key string) bool { return slices.Contains(c.selection, key) }

// Marquee returns the selection rectangle in screen coordinates while
// selecting.
func (c *Controller) Marquee() (geom.Rect, bool) {
	if c.mode != ModeSelecting {
		return geom.Rect{}, false
	}
	return geom.RectFromCorners(c.marqueeFrom, c.marqueeTo), true
}

// Connector returns the connector being dragged while connecting.
func (c *Controller) Connector() (Connector, bool) {
	if c.mode != ModeConnecting {
		return Connector{}, false
	}
	return Connector{From: c.connFrom, Start: c.connStart, End: c.connEnd}, true
}

// Reset ends any gesture and clears the selection, hover and pan key.
func (c *Controller) Reset() {
	c.endGesture()
	c.setSelection(nil)
	c.hover = ""
	c.spaceDown = false
}

func (c *Controller) endGesture() {
	c.dragStart = geom.Point{}
	c.startOffset = geom.Point{}
	c.walkBySpace = false
	c.handle = ""
	c.snapshot = nil
	c.connFrom = ""
	c.connStart = geom.Point{}
	c.connEnd = geom.Point{}
	c.marqueeFrom = geom.Point{}
	c.marqueeTo = geom.Point{}
	c.setMode(ModeIdle)
}

func (c *Controller) setMode(m Mode) {
	if c.mode == m {
		return
	}
	from := c.mode
	c.mode = m
	c.logger.Debug("mode change", "from", from, "to", m)
	observability.Editor().OnModeChange(from.String(), m.String())
}

func (c *Controller) setSelection(keys []string) {
	if slices.Equal(c.selection, keys) {
		return
	}
	c.selection = keys
	observability.Editor().OnSelectionChange(len(keys))
}

// capture snapshots the geometry of the given keys.
func (c *Controller) capture(keys []string) map[string]geom.Rect {
	snap := make(map[string]geom.Rect, len(keys))
	for _, k := range keys {
		if it := c.Item(k); it != nil {
			snap[k] = it.Bounds()
		}
	}
	return snap
}
