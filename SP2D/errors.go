package SP2D

import (
	"errors"
	"fmt"
)

// Contract violations and numerical degeneracies abort the evaluation
// before any partial result is returned.
var (
	ErrSliceIndexOutOfRange = errors.New("slice index out of range")
	ErrInvalidOptionList    = errors.New("options must be supplied as complete key/value pairs")
)

// DegenerateBasisError reports a zero rational normalization denominator.
// The weight configuration does not define a valid rational basis at the
// offending evaluation point.
type DegenerateBasisError struct {
	Node, Elem int // quadrature node and global element, 1-based
}

func (e *DegenerateBasisError) Error() string {
	return fmt.Sprintf("degenerate rational basis: zero denominator at quadrature node %d of element %d", e.Node, e.Elem)
}

// SingularJacobianError reports a non-invertible geometry Jacobian.
type SingularJacobianError struct {
	Node, Elem int // quadrature node and position of the element in the subset, 1-based
	Det        float64
}

func (e *SingularJacobianError) Error() string {
	return fmt.Sprintf("singular geometry Jacobian (det = %v) at quadrature node %d, subset element %d", e.Det, e.Node, e.Elem)
}

// UnknownOptionError reports an unrecognized key in an option list.
type UnknownOptionError struct {
	Key string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q, recognized options are \"value\" and \"gradient\"", e.Key)
}
