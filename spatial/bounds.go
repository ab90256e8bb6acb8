package spatial

// Bounds is an axis-aligned cube described by its min and max corners.
// The zero value is a degenerate point at the origin; construct real
// bounds with NewBounds.
type Bounds struct {
	Min, Max Vec3
}

// NewBounds returns the bounds spanning min..max.
func NewBounds(min, max Vec3) Bounds {
	return Bounds{Min: min, Max: max}
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the per-axis extent, Max - Min.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Width returns the largest component of Size — the side length the
// Barnes-Hut criterion compares against distance.
func (b Bounds) Width() float32 {
	return b.Size().MaxElement()
}

// Contains reports whether point lies inside the bounds, boundary
// inclusive on every face.
func (b Bounds) Contains(point Vec3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// ContainsBounds reports whether other lies entirely inside b.
func (b Bounds) ContainsBounds(other Bounds) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// Include returns b grown just enough to contain point.
func (b Bounds) Include(point Vec3) Bounds {
	return Bounds{Min: b.Min.Min(point), Max: b.Max.Max(point)}
}

// Doubled returns the bounds with twice the extent about the same center.
func (b Bounds) Doubled() Bounds {
	center := b.Center()
	size := b.Size()
	return Bounds{Min: center.Sub(size), Max: center.Add(size)}
}

// Octant returns the sub-cube covering octant index∈[0,8). The low three
// bits of index select the sign of each axis offset from the center: bit
// 0→x, bit 1→y, bit 2→z, positive when set.
func (b Bounds) Octant(index int) Bounds {
	center := b.Center()
	halfSize := b.Size().Scale(0.5)
	offset := halfSize.Scale(0.5)

	sign := func(bit int) float32 {
		if index&bit != 0 {
			return 1.0
		}
		return -1.0
	}
	octantCenter := center.Add(Vec3{
		X: offset.X * sign(1),
		Y: offset.Y * sign(2),
		Z: offset.Z * sign(4),
	})

	quarter := halfSize.Scale(0.5)
	return Bounds{Min: octantCenter.Sub(quarter), Max: octantCenter.Add(quarter)}
}

// OctantIndex maps point to the index of the octant it lies in, using the
// same bit layout as Octant. Comparison is strict > against the center per
// axis, so ties resolve to the negative side.
func (b Bounds) OctantIndex(point Vec3) int {
	center := b.Center()
	index := 0
	if point.X > center.X {
		index |= 1
	}
	if point.Y > center.Y {
		index |= 2
	}
	if point.Z > center.Z {
		index |= 4
	}
	return index
}

// ResizeExpand is the expansion policy used by the octree's resizing
// insert path: grow to include point, then double about the new center.
func ResizeExpand(b Bounds, point Vec3) Bounds {
	return b.Include(point).Doubled()
}
