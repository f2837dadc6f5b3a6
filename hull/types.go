package hull

// GeoPoint is a geographic location with coordinates in degrees. Points are
// immutable values. The algorithm never fabricates or rounds locations, it
// only drops whole elements, so exact coordinate comparison is safe here and
// is used deliberately for deduplication.
type GeoPoint struct {
	Longitude float64
	Latitude  float64
}

// GeoVector is the planar difference between two locations. Treating the
// difference as planar is acceptable at the scale of a search boundary;
// point sets spanning the antimeridian or a pole are outside what this
// package handles.
type GeoVector struct {
	Longitude float64
	Latitude  float64
}

// Sub translates p into a frame with o at the origin.
func (p GeoPoint) Sub(o GeoPoint) GeoVector {
	return GeoVector{p.Longitude - o.Longitude, p.Latitude - o.Latitude}
}

// SearchPoint is one element of a boundary: a location plus whatever payload
// the caller attached to it. Search points are copied by value throughout
// the pruning pass, and the payload of a surviving point comes through
// unchanged.
type SearchPoint struct {
	Location GeoPoint
	Data     interface{}
}

// SearchPointVector is an ordered, mutable boundary of search points in a
// caller-defined winding order.
type SearchPointVector []SearchPoint

// Replace swaps in new contents wholesale. Any references or subslices into
// the old contents are invalid afterwards.
func (v *SearchPointVector) Replace(points SearchPointVector) {
	*v = points
}
