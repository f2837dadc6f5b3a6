package hull

// Pruner discards the interior points of a boundary, leaving only the points
// of its convex hull in their original relative winding order. Pruning is
// how a search boundary stays small: a point strictly inside the convex
// envelope can never be the nearest boundary point to anything outside it,
// so it contributes nothing.
//
// A pruner owns its boundary for the duration of a PruneInterior call. The
// final step replaces the vector's contents wholesale with no locking, so
// callers must serialize access to the boundary around a pruning run.
type Pruner struct {
	boundary  *SearchPointVector
	tolerance float64
}

// NewPruner creates a pruner over boundary. The tolerance governs when a
// near-straight triple counts as collinear; pass AutoTolerance to scale it
// per comparison.
func NewPruner(boundary *SearchPointVector, tolerance float64) *Pruner {
	return &Pruner{boundary: boundary, tolerance: tolerance}
}

// PruneInterior removes every point that lies strictly inside the convex
// hull of the boundary, and reports whether the boundary was modified.
//
// The boundary is partitioned around its left-right diagonal, the two half
// hulls are built, and only if at least one point was actually discarded is
// the boundary rebuilt. An already-convex boundary is left untouched, which
// also means a second call right after a successful prune is a no-op.
func (pr *Pruner) PruneInterior() bool {
	size := len(*pr.boundary)
	if size < 3 {
		// Not a polygon; nothing can be interior.
		return false
	}

	part := PartitionPoints(*pr.boundary, pr.tolerance)

	lowerHull, lowerPruned := BuildHalfHull(part.Lower, part.Left, part.Right, LowerSide, pr.tolerance)
	upperHull, upperPruned := BuildHalfHull(part.Upper, part.Left, part.Right, UpperSide, pr.tolerance)

	if !lowerPruned && !upperPruned {
		return false
	}

	// Walk the lower hull left to right, then the upper hull right to left.
	// Both half hulls start with the left extreme and end with the right one,
	// so each walk stops one short of its final element to emit the shared
	// extremes exactly once. The result winds left -> lower -> right -> upper.
	result := make(SearchPointVector, 0, size)
	result = append(result, lowerHull[:len(lowerHull)-1]...)
	for i := len(upperHull) - 1; i >= 1; i-- {
		result = append(result, upperHull[i])
	}

	if len(result) > size {
		fatalf("pruned boundary grew from %d to %d points", size, len(result))
	}

	pr.boundary.Replace(result)
	return true
}
