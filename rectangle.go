package quadtree

// Rectangle is an axis-aligned boundary given by its center (X, Y) and its
// extents from the center (W, H). It covers [X-W, X+W] × [Y-H, Y+H].
type Rectangle struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRectangle(x, y, w, h float64) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// Contains reports whether p lies inside r. Edges are included.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X-r.W &&
		p.X <= r.X+r.W &&
		p.Y >= r.Y-r.H &&
		p.Y <= r.Y+r.H
}

// quadrant returns the rectangle covering one quarter of r, dx and dy being
// -1 or +1.
func (r Rectangle) quadrant(dx, dy float64) Rectangle {
	return Rectangle{
		X: r.X + dx*r.W/2.0,
		Y: r.Y + dy*r.H/2.0,
		W: r.W / 2.0,
		H: r.H / 2.0,
	}
}

func (r Rectangle) String() string {
	return "{" + Point{r.X, r.Y}.String() + " ±" + Point{r.W, r.H}.String() + "}"
}
