package stridederrors

import "errors"

var (
	ErrInvalidOperation  = errors.New("strided: invalid operation")
	ErrInvalidArgument   = errors.New("strided: invalid argument")
	ErrDimensionMismatch = errors.New("strided: dimension mismatch")
	ErrNotFound          = errors.New("strided: not found")
)

// ErrStrideMismatch and ErrZeroStride both match ErrInvalidOperation with errors.Is.
var (
	ErrStrideMismatch = &opError{msg: "strided: distance between cursors with different strides"}
	ErrZeroStride     = &opError{msg: "strided: distance with zero stride"}
)

type opError struct {
	msg string
}

func (e *opError) Error() string { return e.msg }

func (e *opError) Is(target error) bool { return target == ErrInvalidOperation }
