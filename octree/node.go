package octree

import "sokobauto/spatial"

// node is one octree cell. children == nil marks a leaf holding its points
// in the points bucket; a non-nil children array marks an internal node
// whose points all live in the sub-nodes. The two cases are mutually
// exclusive, mirroring a tagged union without any virtual dispatch.
type node struct {
	bounds       spatial.Bounds
	centerOfMass spatial.Vec3
	totalMass    float32
	count        int

	points   []Point
	children *[8]node
}

func newNode(bounds spatial.Bounds) *node {
	return &node{bounds: bounds}
}

func (n *node) isLeaf() bool {
	return n.children == nil
}

// insert adds one point, updating this node's aggregates incrementally on
// the way down: com ← (com·M + p·m) / (M + m).
func (n *node) insert(id int, pos spatial.Vec3, mass float32, remainingDepth, maxPointsPerLeaf int) {
	totalMass := n.totalMass + mass
	if totalMass > 0 {
		n.centerOfMass = n.centerOfMass.Scale(n.totalMass).Add(pos.Scale(mass)).Scale(1 / totalMass)
	} else {
		n.centerOfMass = pos
	}
	n.totalMass = totalMass
	n.count++

	if n.isLeaf() {
		n.points = append(n.points, Point{ID: id, Pos: pos})
		// Subdivision stops when the depth budget is spent; a leaf at the
		// limit simply grows past maxPointsPerLeaf.
		if len(n.points) > maxPointsPerLeaf && remainingDepth > 0 {
			n.subdivide(remainingDepth-1, maxPointsPerLeaf)
		}
		return
	}

	idx := n.bounds.OctantIndex(pos)
	n.children[idx].insert(id, pos, mass, remainingDepth-1, maxPointsPerLeaf)
}

// subdivide splits a leaf into 8 children covering its octants and
// redistributes the bucket by octant index.
func (n *node) subdivide(remainingDepth, maxPointsPerLeaf int) {
	points := n.points
	n.points = nil

	children := new([8]node)
	for i := range children {
		children[i] = node{bounds: n.bounds.Octant(i)}
	}
	n.children = children

	for _, p := range points {
		idx := n.bounds.OctantIndex(p.Pos)
		children[idx].insert(p.ID, p.Pos, UnitMass, remainingDepth, maxPointsPerLeaf)
	}
}

// remove walks the octant path to pos's leaf and deletes the entry with a
// matching id, recomputing aggregates from scratch on the way back up. An
// internal node whose occupancy drops below minPointsPerNode collapses its
// whole subtree back into a single leaf.
func (n *node) remove(id int, pos spatial.Vec3, minPointsPerNode int) bool {
	if !n.bounds.Contains(pos) {
		return false
	}

	if n.isLeaf() {
		kept := n.points[:0]
		removed := false
		for _, p := range n.points {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		if !removed {
			return false
		}
		n.points = kept
		n.recomputeFromPoints()
		return true
	}

	idx := n.bounds.OctantIndex(pos)
	if !n.children[idx].remove(id, pos, minPointsPerNode) {
		return false
	}

	n.recomputeFromChildren()
	if n.count < minPointsPerNode {
		n.collapse()
	}
	return true
}

// recomputeFromPoints rebuilds a leaf's aggregates exactly from its
// remaining bucket, discarding accumulated incremental-update error.
func (n *node) recomputeFromPoints() {
	n.count = len(n.points)
	n.totalMass = float32(n.count) * UnitMass
	if n.count == 0 {
		n.centerOfMass = spatial.Vec3{}
		return
	}
	var sum spatial.Vec3
	for _, p := range n.points {
		sum = sum.Add(p.Pos)
	}
	n.centerOfMass = sum.Scale(1 / float32(n.count))
}

// recomputeFromChildren rebuilds an internal node's aggregates from its 8
// children.
func (n *node) recomputeFromChildren() {
	n.count = 0
	n.totalMass = 0
	var weighted spatial.Vec3
	for i := range n.children {
		child := &n.children[i]
		n.count += child.count
		n.totalMass += child.totalMass
		weighted = weighted.Add(child.centerOfMass.Scale(child.totalMass))
	}
	if n.count > 0 && n.totalMass > 0 {
		n.centerOfMass = weighted.Scale(1 / n.totalMass)
	} else {
		n.centerOfMass = spatial.Vec3{}
	}
}

// collapse re-collects every descendant point into a single leaf bucket
// replacing the children array.
func (n *node) collapse() {
	var points []Point
	n.collectPoints(&points)
	n.children = nil
	n.points = points
	n.recomputeFromPoints()
}

func (n *node) collectPoints(out *[]Point) {
	if n.isLeaf() {
		*out = append(*out, n.points...)
		return
	}
	for i := range n.children {
		n.children[i].collectPoints(out)
	}
}

// force evaluates the Barnes-Hut approximated repulsion at pos over this
// subtree.
func (n *node) force(pos spatial.Vec3, theta, repulsionStrength float32) spatial.Vec3 {
	if n.count == 0 {
		return spatial.Vec3{}
	}

	diff := pos.Sub(n.centerOfMass)
	dist := diff.Length()

	// Barnes-Hut criterion: a far-enough subtree acts as one mass at its
	// center of mass.
	if n.bounds.Width()/dist < theta && dist > MinDistance {
		magnitude := repulsionStrength * n.totalMass / (dist * dist)
		return diff.Normalize().Scale(magnitude)
	}

	var total spatial.Vec3
	if n.isLeaf() {
		for _, p := range n.points {
			pointDiff := pos.Sub(p.Pos)
			pointDist := pointDiff.Length()
			if pointDist < MinDistance {
				continue
			}
			magnitude := UnitMass * repulsionStrength / (pointDist * pointDist)
			total = total.Add(pointDiff.Normalize().Scale(magnitude))
		}
		return total
	}

	for i := range n.children {
		total = total.Add(n.children[i].force(pos, theta, repulsionStrength))
	}
	return total
}
