package editor

// Button identifies a pointer button, numbered like DOM MouseEvent.button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// KeySpace is the key code of the pan modifier.
const KeySpace = "Space"

// HitKind classifies what is under the pointer.
type HitKind int

const (
	// HitCanvas is empty canvas. It is the zero value.
	HitCanvas HitKind = iota
	// HitNone matches nothing the editor reacts to.
	HitNone
	HitItem
	HitHandle
	HitScrollbarX
	HitScrollbarY
)

func (k HitKind) String() string {
	switch k {
	case HitCanvas:
		return "canvas"
	case HitItem:
		return "item"
	case HitHandle:
		return "handle"
	case HitScrollbarX:
		return "scrollbar-x"
	case HitScrollbarY:
		return "scrollbar-y"
	default:
		return "none"
	}
}

// HitTarget is the host's answer to "what is under the pointer".
// Key is set for items and handles, Handle only for handles.
type HitTarget struct {
	Kind   HitKind
	Key    string
	Handle Direction
}

// OnItem returns a target for the body of an item.
func OnItem(key string) HitTarget { return HitTarget{Kind: HitItem, Key: key} }

// OnHandle returns a target for a resize handle of an item.
func OnHandle(key string, d Direction) HitTarget {
	return HitTarget{Kind: HitHandle, Key: key, Handle: d}
}

// PointerEvent is a pointer press, move or release.
//
// X and Y are page coordinates, used for drags measured as deltas. OffsetX and
// OffsetY are relative to the canvas origin, used where absolute canvas
// positions matter (marquee, connector end point).
type PointerEvent struct {
	Button  Button
	X, Y    float64
	OffsetX float64
	OffsetY float64
	Shift   bool
	Alt     bool
	Ctrl    bool
	Target  HitTarget
}

// WheelEvent is a wheel or trackpad scroll. Zoom is set while the zoom
// modifier is held. Width and Height are the size of the element that
// received the event; OffsetX and OffsetY the pointer position inside it.
type WheelEvent struct {
	DeltaX  float64
	DeltaY  float64
	Zoom    bool
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// KeyEvent is a key press or release identified by its physical key code.
type KeyEvent struct {
	Code string
}
