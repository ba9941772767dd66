/*
Package quadtree implements a region quadtree over 2D points.

A node stores up to its capacity of points. The insert that would overflow a
node splits it into four quadrants, and that point and every later one go to
the quadrant containing them. Points already held by the node stay where they
are.

A QuadTree is not safe for concurrent use. Use Locked to share one between
goroutines.
*/
package quadtree

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
)

// Nodes with a larger capacity grow their point slice on demand.
const maxPreallocatedPoints = 64

type QuadTree struct {
	boundary Rectangle
	capacity int
	points   []Point
	divided  bool

	nw *QuadTree
	ne *QuadTree
	sw *QuadTree
	se *QuadTree
}

// New returns an empty quadtree covering boundary, whose nodes hold at most
// capacity points each.
func New(boundary *Rectangle, capacity int) (*QuadTree, error) {
	if boundary == nil {
		return nil, errBoundaryMissing()
	}
	if capacity < 1 {
		return nil, errCapacityRange(capacity)
	}
	return newNode(*boundary, capacity), nil
}

func newNode(boundary Rectangle, capacity int) *QuadTree {
	return &QuadTree{
		boundary: boundary,
		capacity: capacity,
		points:   make([]Point, 0, min(capacity, maxPreallocatedPoints)),
	}
}

func (q *QuadTree) Boundary() Rectangle {
	return q.boundary
}

func (q *QuadTree) Capacity() int {
	return q.capacity
}

// Points returns a copy of the points held directly by this node, in
// insertion order. Points held by its quadrants are not included.
func (q *QuadTree) Points() []Point {
	points := make([]Point, len(q.points))
	copy(points, q.points)
	return points
}

func (q *QuadTree) Divided() bool {
	return q.divided
}

// Northwest returns the quadrant with the lower X and lower Y, or nil if the
// node is not divided. The same goes for the three other quadrants.
func (q *QuadTree) Northwest() *QuadTree {
	return q.nw
}

func (q *QuadTree) Northeast() *QuadTree {
	return q.ne
}

func (q *QuadTree) Southwest() *QuadTree {
	return q.sw
}

func (q *QuadTree) Southeast() *QuadTree {
	return q.se
}

// Insert adds p to the tree. It returns false if p is outside the tree's
// boundary.
func (q *QuadTree) Insert(p Point) bool {
	ok := q.insert(p)
	instrumentInsert(ok)
	return ok
}

func (q *QuadTree) insert(p Point) bool {
	if !q.boundary.Contains(p) {
		return false
	}
	if !q.divided {
		if len(q.points) < q.capacity {
			q.points = append(q.points, p)
			return true
		}
		q.Subdivide()
	}

	// Points on a shared edge go to the first quadrant that contains them.
	return q.nw.insert(p) ||
		q.ne.insert(p) ||
		q.sw.insert(p) ||
		q.se.insert(p)
}

// Subdivide splits the node into four quadrants with the same capacity.
// Points already in the node are not moved. It does nothing on a node that
// is already divided.
func (q *QuadTree) Subdivide() {
	if q.divided {
		return
	}

	q.nw = newNode(q.boundary.quadrant(-1, -1), q.capacity)
	q.ne = newNode(q.boundary.quadrant(+1, -1), q.capacity)
	q.sw = newNode(q.boundary.quadrant(-1, +1), q.capacity)
	q.se = newNode(q.boundary.quadrant(+1, +1), q.capacity)
	q.divided = true

	instrumentSubdivision()
	logs.WithTag("boundary", q.boundary.String()).
		WithTag("capacity", q.capacity).
		Debug("quadtree subdivided")
}

// Len returns the number of points stored in the tree rooted at q.
func (q *QuadTree) Len() int {
	n := 0
	q.Walk(func(node *QuadTree) bool {
		n += len(node.points)
		return true
	})
	return n
}

// Walk calls fn for q and then, in northwest, northeast, southwest,
// southeast order, for each of its descendants. The quadrants of a node are
// skipped when fn returns false for it.
func (q *QuadTree) Walk(fn func(*QuadTree) bool) {
	if !fn(q) || !q.divided {
		return
	}
	q.nw.Walk(fn)
	q.ne.Walk(fn)
	q.sw.Walk(fn)
	q.se.Walk(fn)
}
