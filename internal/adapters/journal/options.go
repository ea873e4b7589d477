package journal

import (
	"github.com/okian/pathway/pkg/logger"
)

// Option applies a configuration option to the FileJournal.
type Option func(*FileJournal)

// WithPath sets the backing file path.
func WithPath(path string) Option {
	return func(j *FileJournal) {
		if path != "" {
			j.path = path
		}
	}
}

// WithBufferSize bounds the write queue.
func WithBufferSize(size int) Option {
	return func(j *FileJournal) {
		if size > 0 {
			j.bufferSize = size
		}
	}
}

// WithLogger sets a custom logger for the journal.
func WithLogger(l logger.Logger) Option {
	return func(j *FileJournal) {
		if l != nil {
			j.logger = l
		}
	}
}
