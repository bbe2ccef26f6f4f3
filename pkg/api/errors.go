package api

import (
	"errors"
)

var (
	// ErrSessionNotFound the session does not exist or was evicted
	ErrSessionNotFound = errors.New("session not found")
	// ErrTerminalNotFound the terminal is not connected
	ErrTerminalNotFound = errors.New("terminal not found")
	// ErrInputTooLarge the request body exceeds the max input
	ErrInputTooLarge = errors.New("input too large")
	// ErrSessionLimit no more session ids
	ErrSessionLimit = errors.New("too many sessions")
)
