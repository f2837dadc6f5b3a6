// Boundary simplification by convex hull pruning.
//
// This package takes an ordered sequence of 2D geographic points, such as
// the boundary of a search region, and discards the points that lie strictly
// inside the convex envelope of the set. The surviving points are exactly
// the convex boundary, in their original relative winding order, so a
// polygon-like sequence stays a polygon-like sequence.
package hullprune

import "github.com/osuushi/hullprune/hull"

type GeoPoint = hull.GeoPoint
type SearchPoint = hull.SearchPoint
type SearchPointVector = hull.SearchPointVector

// AutoTolerance asks for a collinearity tolerance scaled per comparison to
// the magnitude of the coordinates involved, rather than a fixed dead zone.
const AutoTolerance = hull.AutoTolerance

// PruneInterior removes the interior points of boundary in place and reports
// whether it was modified. On false the boundary is untouched. A non-negative
// tolerance is the dead zone within which three points count as collinear;
// AutoTolerance scales it per comparison.
//
// The caller keeps exclusive ownership of the boundary for the duration of
// the call; on success its old contents are replaced wholesale.
func PruneInterior(boundary *SearchPointVector, tolerance float64) (changed bool, err error) {
	defer func() {
		recoveredErr := hull.HandlePrunePanicRecover(recover())
		if recoveredErr != nil {
			changed = false
			err = recoveredErr
		}
	}()
	return hull.NewPruner(boundary, tolerance).PruneInterior(), nil
}
