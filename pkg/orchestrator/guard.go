package orchestrator

import (
	"errors"
	"fmt"
)

// ErrDuplicateSignID is returned when a sign identifier repeats within a run.
var ErrDuplicateSignID = errors.New("orchestrator: sign ID seen more than once")

// idGuard remembers the identifiers seen by one run.
type idGuard map[string]struct{}

func newIDGuard() idGuard {
	return make(idGuard)
}

// observe records id, failing if it was already recorded.
func (g idGuard) observe(id string) error {
	if _, seen := g[id]; seen {
		return fmt.Errorf("%w: %q", ErrDuplicateSignID, id)
	}
	g[id] = struct{}{}
	return nil
}
