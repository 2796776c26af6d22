package geom

import "github.com/pkg/errors"

// Geometric degeneracies are reported to the caller, never defaulted. The
// sentinels are wrapped with the operands involved; test with errors.Is.
var (
	ErrParallelLines  = errors.New("lines are parallel")
	ErrDegenerateLine = errors.New("line has zero length")
	ErrSingular       = errors.New("matrix is singular")
	ErrIndex          = errors.New("index out of range")
)
