// Package journal appends skill-gap requests to a local JSON file for later
// inspection. Writes are best-effort: a single writer goroutine drains a
// bounded queue so the response path is never blocked and two requests can
// never clobber each other's appended entry. Failures are counted and
// logged, never surfaced to callers.
package journal

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/okian/pathway/pkg/logger"
	"github.com/okian/pathway/pkg/metrics"
)

// Default journal configuration constants.
const (
	defaultPath       = "user-inputs.json"
	defaultBufferSize = 64

	filePerm = 0o644
)

// Entry is one journaled skill-gap request. CurrentSkills holds the
// normalized (trimmed, lowercased) user input.
type Entry struct {
	ID            string   `json:"id"`
	TargetRole    string   `json:"targetRole"`
	CurrentSkills []string `json:"currentSkills"`
	Timestamp     string   `json:"timestamp"`
}

// Recorder accepts entries for asynchronous persistence.
type Recorder interface {
	// Record enqueues an entry. Returns false when the entry was dropped
	// (full queue or closed journal); callers must not treat that as an error.
	Record(ctx context.Context, e Entry) bool
}

// FileJournal implements Recorder against a growing JSON array file.
type FileJournal struct {
	path       string
	bufferSize int

	entries chan Entry
	done    chan struct{}

	mu      sync.RWMutex
	closed  bool
	started bool

	logger logger.Logger
}

// NewFileJournal creates a journal with configuration options.
func NewFileJournal(opts ...Option) *FileJournal {
	j := &FileJournal{
		path:       defaultPath,
		bufferSize: defaultBufferSize,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(j)
	}
	j.entries = make(chan Entry, j.bufferSize)
	return j
}

// Start launches the writer goroutine. It runs until Close or ctx
// cancellation, whichever comes first.
func (j *FileJournal) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.started {
		return
	}
	if j.logger == nil {
		j.logger = logger.Get().Named("journal")
	}
	j.started = true

	go func() {
		defer close(j.done)
		for {
			select {
			case e, ok := <-j.entries:
				if !ok {
					return
				}
				j.persist(e)
				metrics.UpdateJournalQueueDepth(len(j.entries))
			case <-ctx.Done():
				// Flush whatever is already queued, then stop.
				for {
					select {
					case e, ok := <-j.entries:
						if !ok {
							return
						}
						j.persist(e)
					default:
						return
					}
				}
			}
		}
	}()
}

// Record enqueues an entry without blocking.
func (j *FileJournal) Record(_ context.Context, e Entry) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.closed || !j.started {
		metrics.RecordJournalDropped()
		return false
	}
	select {
	case j.entries <- e:
		metrics.UpdateJournalQueueDepth(len(j.entries))
		return true
	default:
		metrics.RecordJournalDropped()
		return false
	}
}

// Close stops accepting entries and waits for queued ones to be written.
func (j *FileJournal) Close() error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return nil
	}
	j.closed = true
	close(j.entries)
	started := j.started
	j.mu.Unlock()

	if started {
		<-j.done
	}
	return nil
}

// Path returns the backing file path.
func (j *FileJournal) Path() string {
	return j.path
}

// persist does the read-modify-append-write cycle against the backing file.
// A missing or corrupt file is treated as an empty collection.
func (j *FileJournal) persist(e Entry) {
	ctx := context.Background()

	var all []Entry
	if raw, err := os.ReadFile(j.path); err == nil {
		if err := json.Unmarshal(raw, &all); err != nil {
			j.logger.Warn(ctx, "journal file corrupt, starting fresh",
				logger.String("path", j.path),
				logger.Error(err),
			)
			all = nil
		}
	}

	all = append(all, e)

	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		metrics.RecordJournalWriteError()
		j.logger.Error(ctx, "journal marshal failed", logger.Error(err))
		return
	}
	if err := os.WriteFile(j.path, raw, filePerm); err != nil {
		metrics.RecordJournalWriteError()
		j.logger.Error(ctx, "journal write failed",
			logger.String("path", j.path),
			logger.Error(err),
		)
		return
	}
	metrics.RecordJournalWrite()
}
