package scene

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidViewport   = errors.New("invalid viewport")
	ErrOutputUnavailable = errors.New("output unavailable")
	// A component refers to a point that is not there. Only reachable by
	// editing the geometry of a component after construction.
	ErrNilReference = errors.New("nil point reference")
)

// Failure to create or write the render destination. It matches
// ErrOutputUnavailable with errors.Is and unwraps to the underlying I/O error.
type OutputError struct {
	Path string // empty when rendering to a plain writer
	Err  error
}

func (e *OutputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: document incomplete: %v", ErrOutputUnavailable, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrOutputUnavailable, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

func (e *OutputError) Is(target error) bool { return target == ErrOutputUnavailable }
