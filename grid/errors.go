package grid

import (
	"errors"
	"fmt"
)

// ErrEmptyImage indicates a grid has no rows or no columns, mirroring
// gridgraph.ErrEmptyGrid in the package this module's grid store is
// built from.
var ErrEmptyImage = errors.New("grid: image must have at least one row and one column")

// InvariantError reports a condition that should be unreachable given a
// correctly maintained Image -- an implementation bug rather than a
// caller mistake, mirroring io.cc's CC_ASSERT(ancor.x == x && ancor.y == y)
// in write_token_sequences. Callers can distinguish it from ordinary
// sentinel errors with errors.As.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("grid: invariant violated in %s: %s", e.Op, e.Detail)
}
