package geom

import (
	"strconv"
	"strings"
	"unicode"
)

// ParsePoints parses a list of "x,y" pairs separated by whitespace or
// semicolons, such as the value of an SVG points attribute.
//
// Pairs missing a coordinate are dropped, as are pairs whose coordinates are
// not numbers. Extra coordinates after the second are ignored.
func ParsePoints(s string) []Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || unicode.IsSpace(r)
	})

	points := make([]Point, 0, len(fields))
	for _, f := range fields {
		parts := strings.FieldsFunc(f, func(r rune) bool { return r == ',' })
		if len(parts) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}
