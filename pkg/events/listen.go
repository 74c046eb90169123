// Package events provides types and interfaces for tracking dataset generation
// progress. A run reports its lifecycle from start to the final write, with
// periodic progress updates while records are being generated.
package events

import (
	"time"
)

// EventType identifies what happened during a run.
type EventType string

const (
	// EventGenerationStarted is emitted before the first record is generated.
	EventGenerationStarted EventType = "generation_started"

	// EventGenerationProgress is emitted periodically while records are generated.
	EventGenerationProgress EventType = "generation_progress"

	// EventGenerationCompleted is emitted once every record exists in memory.
	EventGenerationCompleted EventType = "generation_completed"

	// EventWriteStarted is emitted before the document is serialized.
	EventWriteStarted EventType = "write_started"

	// EventWriteCompleted is emitted after the output file has been closed.
	EventWriteCompleted EventType = "write_completed"

	// EventRunFailed is emitted when generation or writing fails.
	EventRunFailed EventType = "run_failed"
)

// Event is a single progress notification.
type Event struct {
	// Type specifies the kind of event.
	Type EventType `json:"type"`
	// Timestamp indicates when the event occurred.
	Timestamp time.Time `json:"timestamp"`
	// RunID is the unique identifier of the run.
	RunID string `json:"run_id"`
	// Done is the number of records generated so far.
	Done int `json:"done,omitempty"`
	// Total is the number of records the run will generate.
	Total int `json:"total,omitempty"`
	// Path is the output file, set on write events.
	Path string `json:"path,omitempty"`
	// Bytes is the size of the written file, set on EventWriteCompleted.
	Bytes int64 `json:"bytes,omitempty"`
	// Duration is the elapsed time since the run started.
	Duration time.Duration `json:"duration,omitempty"`
	// Error contains the error message if the event represents a failure.
	Error string `json:"error,omitempty"`
}

// Listener receives the events of a run.
type Listener interface {
	// StartListening consumes events until progressChan is closed. It is
	// called on its own goroutine and must keep draining the channel.
	StartListening(progressChan <-chan Event)

	// StopListening is called after progressChan has been closed and returns
	// once every event has been handled.
	StopListening()
}

// NoopListener discards every event.
type NoopListener struct{}

// StartListening drains progressChan without acting on it.
func (n *NoopListener) StartListening(progressChan <-chan Event) {
	for range progressChan {
	}
}

// StopListening implements the Listener interface but performs no operation.
func (n *NoopListener) StopListening() {}
