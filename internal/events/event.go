package events

import (
	"time"

	pkgEvents "github.com/lacquerai/datagen/pkg/events"
)

func NewGenerationStartedEvent(runID string, total int) pkgEvents.Event {
	return pkgEvents.Event{
		Type:      pkgEvents.EventGenerationStarted,
		Total:     total,
		Timestamp: time.Now(),
		RunID:     runID,
	}
}

func NewGenerationProgressEvent(runID string, done, total int) pkgEvents.Event {
	return pkgEvents.Event{
		Type:      pkgEvents.EventGenerationProgress,
		Done:      done,
		Total:     total,
		Timestamp: time.Now(),
		RunID:     runID,
	}
}

func NewGenerationCompletedEvent(runID string, done, total int) pkgEvents.Event {
	return pkgEvents.Event{
		Type:      pkgEvents.EventGenerationCompleted,
		Done:      done,
		Total:     total,
		Timestamp: time.Now(),
		RunID:     runID,
	}
}

func NewWriteStartedEvent(runID string, path string) pkgEvents.Event {
	return pkgEvents.Event{
		Type:      pkgEvents.EventWriteStarted,
		Path:      path,
		Timestamp: time.Now(),
		RunID:     runID,
	}
}

// NewWriteCompletedEvent reports the finished file. done is the number of
// records in the document.
func NewWriteCompletedEvent(runID string, path string, bytes int64, done, total int) pkgEvents.Event {
	return pkgEvents.Event{
		Type:      pkgEvents.EventWriteCompleted,
		Path:      path,
		Bytes:     bytes,
		Done:      done,
		Total:     total,
		Timestamp: time.Now(),
		RunID:     runID,
	}
}

func NewRunFailedEvent(runID string, err error) pkgEvents.Event {
	return pkgEvents.Event{
		Type:      pkgEvents.EventRunFailed,
		Error:     err.Error(),
		Timestamp: time.Now(),
		RunID:     runID,
	}
}
