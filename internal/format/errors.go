package format

import "errors"

// Errors returned by format operations.
var (
	ErrUnknownScope = errors.New("unknown format scope")
)
