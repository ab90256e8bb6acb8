// Package octree implements the Barnes-Hut octree that powers the N-body
// force simulation laying out the state graph in 3-D.
//
// An Octree owns a single root node whose children are either a bucket of
// (id, position) points (a leaf) or eight owned sub-nodes covering its
// octants. Leaves subdivide lazily when they outgrow MaxPointsPerLeaf
// (until the depth budget runs out), and internal nodes collapse back into
// a leaf when removal drains them below MinPointsPerNode. Every node keeps
// three aggregates — point count, total mass, and center of mass — that
// the force query uses to approximate far subtrees as a single mass when
// width/distance falls under the caller's theta.
//
// The tree is single-threaded by design, matching the exploration engine:
// one mutator, no locks.
package octree
