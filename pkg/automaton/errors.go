package automaton

import (
	"errors"
)

var (
	// ErrInvalidTable the generated table breaks a construction rule
	ErrInvalidTable = errors.New("invalid transition table")
)
