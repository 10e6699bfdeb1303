package editor

import (
	"math"

	"github.com/matzehuels/sketchboard/pkg/geom"
)

// Connector is a connection being dragged out of an item. Start is the
// center of the source item, End follows the pointer; both are virtual.
type Connector struct {
	From  string     `json:"from"`
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
}

// Curve returns the S-curve from Start to End.
func (c Connector) Curve() geom.Curve {
	return geom.NewCurve(c.Start.X, c.Start.Y, c.End.X, c.End.Y, c.Start.X, c.Start.Y, c.End.X, c.End.Y)
}

// Path returns the point list of [Connector.Curve].
func (c Connector) Path() string { return c.Curve().String() }

// LinkPath returns the point list of [LinkCurve].
func LinkPath(from, to Item) string { return LinkCurve(from, to).String() }

// LinkCurve returns the S-curve joining two items. The dominant axis between
// the centers picks the facing edges; the curve runs between their midpoints.
func LinkCurve(from, to Item) geom.Curve {
	fc, tc := from.Center(), to.Center()
	a, b := fc, tc
	if math.Abs(fc.X-tc.X) <= math.Abs(fc.Y-tc.Y) {
		if tc.Y >= fc.Y {
			a.Y, b.Y = from.Y+from.H, to.Y
		} else {
			a.Y, b.Y = from.Y, to.Y+to.H
		}
	} else {
		if tc.X >= fc.X {
			a.X, b.X = from.X+from.W, to.X
		} else {
			a.X, b.X = from.X, to.X+to.W
		}
	}
	return geom.NewCurve(fc.X, fc.Y, tc.X, tc.Y, a.X, a.Y, b.X, b.Y)
}
