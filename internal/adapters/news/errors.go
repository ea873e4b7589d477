package news

import "errors"

// Sentinel kinds for news gateway errors.
var (
	ErrUpstream = errors.New("upstream story service unavailable")
)
