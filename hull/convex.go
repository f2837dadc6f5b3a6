package hull

// IsConvex reports whether every cyclically consecutive triple of boundary
// points turns the same way, within tolerance. Collinear triples are allowed
// on either winding. A boundary that a pruning pass leaves untouched is
// convex in this sense, and fewer than three points are trivially convex.
func IsConvex(points SearchPointVector, tolerance float64) bool {
	n := len(points)
	if n < 3 {
		return true
	}

	winding := 0
	for i := 0; i < n; i++ {
		prev := points[CircularIndex(i-1, n)].Location
		cur := points[i].Location
		next := points[CircularIndex(i+1, n)].Location

		dir := Direction(prev, cur, next, tolerance)
		if dir == 0 {
			continue
		}
		if winding == 0 {
			winding = dir
		} else if dir != winding {
			return false
		}
	}
	return true
}
