package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch the caller's own invariants rule out.
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: reached code that should be unreachable", r.Caller)
}
