package hull

import "math"

// AutoTolerance selects scale-adaptive collinearity detection. Instead of a
// fixed dead zone, each Direction call derives its tolerance from the
// magnitude of its own cross product terms. A fixed absolute tolerance
// misbehaves across the dynamic range of geographic coordinate products:
// a value that is decisively nonzero for a small boundary near the origin
// is rounding noise for a large one far from it.
const AutoTolerance = -1

// Sign classifies value as positive (1), negative (-1), or zero (0), where
// "zero" is a symmetric dead zone of width 2*tolerance around zero.
func Sign(value, tolerance float64) int {
	if value > tolerance {
		return 1
	}
	if value < -tolerance {
		return -1
	}
	return 0
}

// Direction reports whether the path p0 -> p1 -> p2 turns right (1), turns
// left (-1), or continues straight (0).
//
// Translate the points so that p1 sits at the origin, then take the cross
// product of the two remaining deltas. Its sign gives the turn, and Sign's
// dead zone decides when a shallow turn counts as straight. A negative
// tolerance requests the auto-tolerance of max(|a|, |b|) / 10, where a and b
// are the two products whose difference is the cross product.
func Direction(p0, p1, p2 GeoPoint, tolerance float64) int {
	deltaA := p0.Sub(p1)
	deltaB := p2.Sub(p1)

	a := deltaA.Longitude * deltaB.Latitude
	b := deltaB.Longitude * deltaA.Latitude

	if tolerance < 0 {
		tolerance = math.Max(math.Abs(a), math.Abs(b)) / 10
	}

	return Sign(a-b, tolerance)
}
