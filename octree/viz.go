package octree

import "sokobauto/spatial"

// VizNode is the read-only description of one non-empty subtree, exported
// for debug rendering of the tree structure itself (cell wireframes,
// center-of-mass markers).
type VizNode struct {
	Bounds       spatial.Bounds
	CenterOfMass spatial.Vec3
	TotalMass    float32
	Depth        int
	IsLeaf       bool
}

// VisualizationNodes returns a depth-annotated flat list of every
// non-empty subtree, in pre-order. Purely read-only.
func (t *Octree) VisualizationNodes() []VizNode {
	var out []VizNode
	collectViz(t.root, 0, &out)
	return out
}

func collectViz(n *node, depth int, out *[]VizNode) {
	if n.count == 0 {
		return
	}

	*out = append(*out, VizNode{
		Bounds:       n.bounds,
		CenterOfMass: n.centerOfMass,
		TotalMass:    n.totalMass,
		Depth:        depth,
		IsLeaf:       n.isLeaf(),
	})
	if n.isLeaf() {
		return
	}
	for i := range n.children {
		collectViz(&n.children[i], depth+1, out)
	}
}
