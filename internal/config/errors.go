package config

import "errors"

// Errors returned by config operations.
var (
	ErrInvalidSetting = errors.New("invalid setting")
	ErrNoPath         = errors.New("no settings path configured")
)
