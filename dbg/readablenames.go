package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for debug output. Any comparable value can be a key; the
// hull code keys on a point's location, so the same coordinates wear the
// same name in the build trace and in the boundary renderer, which is what
// makes the two cross-referenceable while debugging. The memo flagrantly
// leaks memory, but names are generated lazily, so it costs nothing unless
// debugging is actually happening.

var memo = map[interface{}]string{}

func init() {
	// Names are handed out in order of demand, so they are made
	// nondeterministic as a reminder that a name carries no meaning between
	// runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
