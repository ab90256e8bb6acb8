package octree

import (
	"fmt"

	"sokobauto/spatial"
)

// UnitMass is the mass assigned to every stored point. The layout
// simulation treats all graph nodes as uniform.
const UnitMass float32 = 1.0

// MinDistance is the self-force cutoff: contributions from masses closer
// than this are skipped, which makes the force at a point coincident with
// an isolated stored point exactly zero.
const MinDistance float32 = 0.01

// Point is one stored (id, position) entry.
type Point struct {
	ID  int
	Pos spatial.Vec3
}

// ResizeFunc computes a superset of bounds that contains point. Used by
// the resizing insert/update paths; spatial.ResizeExpand is the standard
// policy.
type ResizeFunc func(bounds spatial.Bounds, point spatial.Vec3) spatial.Bounds

// InvariantError is the payload of every panic raised by this package when
// an internal precondition is violated. These never fire on valid
// inputs.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("octree: invariant violated in %s: %s", e.Op, e.Detail)
}

// Octree is the Barnes-Hut tree: one root node plus the three structural
// parameters fixed at construction.
type Octree struct {
	root *node

	// maxDepth is an absolute limit: nodes never subdivide beyond it, and
	// a leaf at the depth limit is permitted to grow past maxPointsPerLeaf.
	maxDepth int
	// maxPointsPerLeaf is the bucket size above which a leaf subdivides.
	maxPointsPerLeaf int
	// minPointsPerNode is the occupancy below which an internal node
	// collapses back into a leaf after a removal. Must not exceed
	// maxPointsPerLeaf: when equal, adding and removing one point can
	// cause a subdivision immediately followed by a merge.
	minPointsPerNode int
}

// New returns an empty Octree covering bounds. It panics with an
// InvariantError if minPointsPerNode exceeds maxPointsPerLeaf.
func New(bounds spatial.Bounds, maxDepth, maxPointsPerLeaf, minPointsPerNode int) *Octree {
	if minPointsPerNode > maxPointsPerLeaf {
		panic(&InvariantError{
			Op:     "New",
			Detail: fmt.Sprintf("minPointsPerNode %d exceeds maxPointsPerLeaf %d", minPointsPerNode, maxPointsPerLeaf),
		})
	}
	return &Octree{
		root:             newNode(bounds),
		maxDepth:         maxDepth,
		maxPointsPerLeaf: maxPointsPerLeaf,
		minPointsPerNode: minPointsPerNode,
	}
}

// FromPoints builds an Octree whose root bounds are the axis-aligned
// bounding cube of points, padded by 10% of the extent on each axis, and
// inserts every point with UnitMass. An empty point set yields a unit cube
// centered at the origin.
func FromPoints(points []Point, maxDepth, maxPointsPerLeaf, minPointsPerNode int) *Octree {
	if len(points) == 0 {
		return New(
			spatial.NewBounds(spatial.Splat(-1.0), spatial.Splat(1.0)),
			maxDepth, maxPointsPerLeaf, minPointsPerNode,
		)
	}

	min := points[0].Pos
	max := points[0].Pos
	for _, p := range points[1:] {
		min = min.Min(p.Pos)
		max = max.Max(p.Pos)
	}
	padding := max.Sub(min).Scale(0.1)
	min = min.Sub(padding)
	max = max.Add(padding)

	tree := New(spatial.NewBounds(min, max), maxDepth, maxPointsPerLeaf, minPointsPerNode)
	for _, p := range points {
		tree.Insert(p.ID, p.Pos)
	}
	return tree
}

// RootBounds returns the current root bounds.
func (t *Octree) RootBounds() spatial.Bounds {
	return t.root.bounds
}

// NodeCount returns the number of stored points.
func (t *Octree) NodeCount() int {
	return t.root.count
}

// TotalMass returns the aggregate mass of all stored points.
func (t *Octree) TotalMass() float32 {
	return t.root.totalMass
}

// CenterOfMass returns the mass-weighted mean position of all stored
// points, or the zero vector for an empty tree.
func (t *Octree) CenterOfMass() spatial.Vec3 {
	return t.root.centerOfMass
}

// Insert stores a point with UnitMass. Inserting a point outside the root
// bounds is a caller error and panics; callers that must accept such
// points use InsertResize.
func (t *Octree) Insert(id int, pos spatial.Vec3) {
	if !t.root.bounds.Contains(pos) {
		panic(&InvariantError{
			Op:     "Insert",
			Detail: fmt.Sprintf("point %s outside root bounds; use InsertResize", pos),
		})
	}
	t.root.insert(id, pos, UnitMass, t.maxDepth, t.maxPointsPerLeaf)
}

// InsertResize stores a point, first growing the root bounds via resize
// when the point lies outside them. Growing rebuilds the tree from its
// stored points under the new bounds. It panics if resize returns bounds
// that still exclude the point.
func (t *Octree) InsertResize(id int, pos spatial.Vec3, resize ResizeFunc) {
	if !t.root.bounds.Contains(pos) {
		newBounds := resize(t.root.bounds, pos)
		if !newBounds.Contains(pos) {
			panic(&InvariantError{
				Op:     "InsertResize",
				Detail: "resize function did not produce bounds containing the new point",
			})
		}
		t.ResizeBounds(newBounds)
	}
	t.root.insert(id, pos, UnitMass, t.maxDepth, t.maxPointsPerLeaf)
}

// Remove deletes the point with the given id from the leaf its position
// maps to. It returns false, without mutating the tree, when no such id is
// stored there.
func (t *Octree) Remove(id int, pos spatial.Vec3) bool {
	return t.root.remove(id, pos, t.minPointsPerNode)
}

// Update moves the point with the given id from oldPos to newPos. If the
// remove phase fails the tree is left unchanged and Update returns false.
func (t *Octree) Update(id int, oldPos, newPos spatial.Vec3) bool {
	if !t.root.remove(id, oldPos, t.minPointsPerNode) {
		return false
	}
	t.root.insert(id, newPos, UnitMass, t.maxDepth, t.maxPointsPerLeaf)
	return true
}

// UpdateResize is Update with the resizing insert path, for new positions
// that may fall outside the current root bounds.
func (t *Octree) UpdateResize(id int, oldPos, newPos spatial.Vec3, resize ResizeFunc) bool {
	if !t.root.remove(id, oldPos, t.minPointsPerNode) {
		return false
	}
	t.InsertResize(id, newPos, resize)
	return true
}

// ResizeBounds rebuilds the tree under newBounds: all stored points are
// snapshotted, a fresh root is created, and every point is reinserted.
// Parameters are unchanged. Passing the current bounds is a valid
// sanitizing rebuild (the incremental center-of-mass update accumulates
// float32 error over many mutations; a rebuild recomputes aggregates from
// scratch).
func (t *Octree) ResizeBounds(newBounds spatial.Bounds) {
	points := t.AllPoints()
	t.root = newNode(newBounds)
	for _, p := range points {
		t.root.insert(p.ID, p.Pos, UnitMass, t.maxDepth, t.maxPointsPerLeaf)
	}
}

// AllPoints returns every stored (id, position) entry, in tree order.
func (t *Octree) AllPoints() []Point {
	var points []Point
	t.root.collectPoints(&points)
	return points
}

// Force evaluates the Barnes-Hut approximated repulsion at pos: subtrees
// with width/distance below theta contribute as a single mass at their
// center of mass; near subtrees are opened, and leaf points closer than
// MinDistance (including the query point itself) are skipped.
func (t *Octree) Force(pos spatial.Vec3, theta, repulsionStrength float32) spatial.Vec3 {
	return t.root.force(pos, theta, repulsionStrength)
}
