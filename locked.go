package quadtree

import (
	"sync"
)

// Locked is a quadtree that is safe for concurrent use. Inserts are
// exclusive, reads are shared.
type Locked struct {
	mutex sync.RWMutex
	tree  *QuadTree
}

func NewLocked(boundary *Rectangle, capacity int) (*Locked, error) {
	tree, err := New(boundary, capacity)
	if err != nil {
		return nil, err
	}
	return &Locked{tree: tree}, nil
}

func (l *Locked) Boundary() Rectangle {
	// the boundary never changes after construction.
	return l.tree.boundary
}

func (l *Locked) Insert(p Point) bool {
	// checked before locking so points outside the tree do not contend.
	if !l.tree.boundary.Contains(p) {
		instrumentInsert(false)
		return false
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.tree.Insert(p)
}

func (l *Locked) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Len()
}

func (l *Locked) Divided() bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Divided()
}

// View calls fn with the underlying tree while holding the read lock. fn
// must not insert into the tree or keep it after returning.
func (l *Locked) View(fn func(*QuadTree)) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	fn(l.tree)
}
