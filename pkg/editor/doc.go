// Package editor implements the interaction controller of the diagram canvas.
//
// A [Controller] owns the viewport transform (offset and scale), the current
// interaction [Mode] and the item selection. The hosting view forwards raw
// pointer, wheel and key events; the controller mutates the geometry of the
// items it was given in place, and the host re-renders from the same slice.
//
// # Coordinates
//
// Items live in virtual (document) coordinates. The viewport maps them to the
// screen with
//
//	screen = virtual*scale + offset
//
// Panning is a screen-space operation; moving and resizing divide pointer
// deltas by the scale because they act on virtual geometry.
//
// # Modes
//
// Exactly one mode is active at a time. A pointer-down in [ModeIdle] picks the
// mode from the hit target, pointer moves drive it, and a pointer-up always
// returns to [ModeIdle]:
//
//	Idle --middle / space+left--> Walking
//	Idle --left on handle-------> Resizing
//	Idle --left on item---------> Moving (alt: Connecting)
//	Idle --left on scrollbar----> ScrollingX / ScrollingY
//	Idle --left on canvas-------> Selecting
//
// # Hit Targets
//
// The controller knows nothing about the widget tree of the host. The host
// resolves what is under the pointer into a [HitTarget] and attaches it to
// each [PointerEvent]. Hosts built on a node tree with CSS-like classes can use
// [Resolve] to do that.
//
// # Snapshots
//
// Moving and resizing capture the geometry of the affected items once at
// pointer-down and compute every move from that snapshot, so rounding to the
// grid never accumulates.
//
// # Errors
//
// Input handling never fails: scale and sizes are clamped, unknown targets are
// ignored. The only error is asking for the text measurement surface before
// one was registered, see [Controller.Surface].
package editor
