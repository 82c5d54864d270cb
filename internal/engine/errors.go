package engine

import "errors"

// Errors returned by engine operations.
var (
	ErrShutdown   = errors.New("engine transport is shut down")
	ErrNotRunning = errors.New("engine process is not running")
)
