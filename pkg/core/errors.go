package core

import (
	"errors"
)

var (
	// ErrDivideByZero the second operand of a division was zero, the result holds the -1 sentinel
	ErrDivideByZero = errors.New("division by zero")
	// ErrClosed the evaluator was closed
	ErrClosed = errors.New("evaluator closed")
)
