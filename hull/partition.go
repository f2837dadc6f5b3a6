package hull

import "sort"

// Partition is the working state produced by one partitioning pass: the two
// extreme points of the boundary and the two candidate chains on either side
// of the line between them. It is consumed by BuildHalfHull and discarded
// once a pruning run finishes.
type Partition struct {
	Left  SearchPoint
	Right SearchPoint
	Upper []SearchPoint
	Lower []SearchPoint
}

// PartitionPoints splits a boundary around its left-right diagonal.
//
// The boundary is copied and sorted by location, which puts the far left and
// far right points of the hull at the ends. Those two are pulled out as the
// partition's extremes. Every remaining point is then classified by which
// side of the left-right line it falls on: points above it go to the upper
// chain, points below to the lower chain. Both chains come out sorted left
// to right, which is exactly what the half-hull builder needs.
//
// The boundary must have at least three points; the pruner's degenerate-size
// guard is responsible for that.
func PartitionPoints(points SearchPointVector, tolerance float64) Partition {
	sorted := make([]SearchPoint, len(points))
	copy(sorted, points)

	// The sort must be stable so that deduplication below keeps the element
	// that appeared first in the original boundary among coincident locations.
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Location, sorted[j].Location
		if a.Longitude != b.Longitude {
			return a.Longitude < b.Longitude
		}
		return a.Latitude < b.Latitude
	})

	part := Partition{
		Left:  sorted[0],
		Right: sorted[len(sorted)-1],
		Upper: make([]SearchPoint, 0, len(points)),
		Lower: make([]SearchPoint, 0, len(points)),
	}

	// Runs of coincident locations collapse to their first occurrence. The
	// last distinct location starts out at the left extreme, so duplicates of
	// the left point never reenter the chains either.
	lastLocation := part.Left.Location

	for _, sp := range sorted[1 : len(sorted)-1] {
		if sp.Location == lastLocation {
			continue
		}
		lastLocation = sp.Location

		// Collinear points go to the lower chain along with everything below
		// the diagonal. Which chain gets the ties determines which boundary
		// points survive pruning for collinear inputs, so this stays fixed.
		if Direction(part.Left.Location, part.Right.Location, sp.Location, tolerance) < 0 {
			part.Upper = append(part.Upper, sp)
		} else {
			part.Lower = append(part.Lower, sp)
		}
	}

	return part
}
