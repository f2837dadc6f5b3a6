package hull

// Side selects which half of the hull BuildHalfHull produces. The two halves
// differ only in the convexity test: on the lower hull the middle point of
// each consecutive triple must stay below the line through its neighbors,
// on the upper hull it must stay above. Each side maps to a sign factor on
// the turn direction, so a single build loop serves both.
type Side int

const (
	LowerSide Side = iota
	UpperSide
)

func (s Side) factor() int {
	if s == UpperSide {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == UpperSide {
		return "upper"
	}
	return "lower"
}

// BuildHalfHull builds one convex chain from left to right through a subset
// of input, which must already be sorted left to right (PartitionPoints
// guarantees this for its chains). It returns the chain, bracketed by the
// left and right extremes, and reports whether any input point was
// discarded.
//
// Each input point is appended to the output, and then the output is
// repaired: for as long as the last three points fail the side's convexity
// test, the next-to-last point is the violation and gets removed. A point is
// appended once and removed at most once, so the whole build is linear in
// the input despite the inner loop.
func BuildHalfHull(input []SearchPoint, left, right SearchPoint, side Side, tolerance float64) ([]SearchPoint, bool) {
	factor := side.factor()

	// The half hull always starts at the left extreme and ends at the right
	// one. The right point rides along as a sentinel at the end of the
	// candidates: it can never be discarded, and it forces the last real
	// candidate through the convexity test. The input is copied first so the
	// sentinel never lands in the caller's backing array.
	candidates := make([]SearchPoint, 0, len(input)+1)
	candidates = append(candidates, input...)
	candidates = append(candidates, right)

	output := make([]SearchPoint, 0, len(candidates)+1)
	output = append(output, left)

	pruned := false

	for _, sp := range candidates {
		output = append(output, sp)
		dbgTraceAppend(side, output)

		for len(output) >= 3 {
			end := len(output) - 1

			if factor*Direction(output[end-2].Location, output[end].Location,
				output[end-1].Location, tolerance) > 0 {
				// The middle point sits strictly on its side's half plane, so
				// the tail of the chain is convex again.
				break
			}

			popped := output[end-1]
			output = append(output[:end-1], output[end])
			pruned = true
			dbgTracePop(side, output, popped)
		}
	}

	return output, pruned
}
