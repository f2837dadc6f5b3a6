package hull

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/hullprune/dbg"
)

// This is for debugging purposes only

// When set, dbgBuildTrace receives one line per append and per pop inside
// BuildHalfHull, so a misbehaving boundary can be watched point by point.
// Points wear the same readable names here as in the boundary renderer.
var dbgBuildTrace io.Writer

func dbgTraceAppend(side Side, chain []SearchPoint) {
	if dbgBuildTrace == nil {
		return
	}
	fmt.Fprintf(dbgBuildTrace, "%s append %s\n", side, dbgChainString(chain))
}

func dbgTracePop(side Side, chain []SearchPoint, popped SearchPoint) {
	if dbgBuildTrace == nil {
		return
	}
	fmt.Fprintf(dbgBuildTrace, "%s pop    %s from %s\n",
		side, dbgPointString(popped, aurora.Red), dbgChainString(chain))
}

// Chains print as readable names with coordinates. The chain is bracketed by
// the shared extremes, which come out cyan; the candidates between them are
// green, and a popped point is red at the site of its removal.
func dbgChainString(chain []SearchPoint) string {
	parts := make([]string, 0, len(chain))
	for i, sp := range chain {
		color := aurora.Green
		if i == 0 || i == len(chain)-1 {
			color = aurora.Cyan
		}
		parts = append(parts, dbgPointString(sp, color))
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func dbgPointString(sp SearchPoint, color func(interface{}) aurora.Value) string {
	name := fmt.Sprintf("%s(%g, %g)", dbg.Name(sp.Location),
		sp.Location.Longitude, sp.Location.Latitude)
	return color(name).String()
}
