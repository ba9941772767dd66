package quadtree

import (
	"strconv"
)

// Point is a 2D coordinate. The tree stores points by value and never
// modifies them.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "]"
}
