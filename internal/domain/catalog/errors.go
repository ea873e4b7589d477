package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrUnknownRole = errors.New("unknown role")
)
