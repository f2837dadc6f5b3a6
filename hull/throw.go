package hull

import "github.com/pkg/errors"

// Pruning is a total function over well-formed boundaries, so there is no
// error return to thread through the stages. An internal invariant violation
// is a bug, not a condition a caller can handle; those panic, and the public
// API recovers the panic to convert it to an error.

type PruneError error

// Panic with a PruneError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandlePrunePanicRecover(r interface{}) error {
	if r != nil {
		if pruneError, ok := r.(PruneError); ok {
			return pruneError
		}
		panic(r)
	}
	return nil
}
