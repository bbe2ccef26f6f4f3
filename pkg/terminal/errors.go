package terminal

import (
	"errors"
)

var (
	// ErrRunning the terminal loop is already running
	ErrRunning = errors.New("terminal already running")
)
