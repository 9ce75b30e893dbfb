package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
)

// IncompatibleBackendError reports an operation invoked across operands
// from different backend families. Mixed-backend calls are user errors
// and are returned, never panicked.
type IncompatibleBackendError struct {
	Op       string
	Families []string
}

func (e *IncompatibleBackendError) Error() string {
	return fmt.Sprintf("dispatch: operation %q received operands from mixed backends (%s); operands must share one backend",
		e.Op, strings.Join(e.Families, ", "))
}

// IsIncompatibleBackend reports whether err is an IncompatibleBackendError.
func IsIncompatibleBackend(err error) bool {
	var ibe *IncompatibleBackendError
	return errors.As(err, &ibe)
}

// InternalDispatchError reports a hole in the dispatch table: a valid
// (operation, signature tuple) with no entry. The table builder is
// required to cover the full product space, so a miss is a programmer
// error and is raised as a panic, not returned.
type InternalDispatchError struct {
	Op   string
	Sigs []coords.Signature
}

func (e *InternalDispatchError) Error() string {
	parts := make([]string, len(e.Sigs))
	for i, s := range e.Sigs {
		parts[i] = s.String()
	}
	return fmt.Sprintf("dispatch: no table entry for %q over (%s); table builder coverage bug",
		e.Op, strings.Join(parts, ", "))
}

func mixedBackendError(op string, operands []backend.Vector) error {
	fams := make([]string, len(operands))
	for i, v := range operands {
		fams[i] = v.Family().Name()
	}
	return &IncompatibleBackendError{Op: op, Families: fams}
}
