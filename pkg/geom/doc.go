// Package geom provides the small geometry vocabulary shared by the editor,
// the text layout engine and the renderers.
//
// Coordinates are float64 throughout. Virtual (document) coordinates and
// screen coordinates use the same types; which space a value lives in is the
// caller's contract, documented at each use site.
//
// # Grid Snapping
//
// [Snap] rounds a value to the nearest multiple of a base:
//
//	geom.Snap(23, 10) // 20
//	geom.Snap(30, 20) // 40 (ties round up)
//	geom.Snap(-5, 10) // 0
//
// Snapping is idempotent, so applying it on every pointer move never drifts.
//
// # Marquee Containment
//
// [InRect] tests strict containment in the box spanned by two arbitrary
// corners, which makes a marquee work regardless of the drag direction.
//
// # Connectors
//
// [ControlPoints] and [CurvePath] compute the S-shaped cubic curve used for
// connectors: vertical when travel is mostly vertical, horizontal otherwise.
package geom
