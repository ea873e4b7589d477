package journal

import "errors"

// Sentinel kinds for journal errors. These surface in logs and metrics only;
// the Recorder contract never returns them to callers.
var (
	ErrClosed = errors.New("journal closed")
)
