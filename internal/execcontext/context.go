package execcontext

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ExecutionContext carries the identity and environment of a single run.
type ExecutionContext struct {
	RunID     string
	StartTime time.Time
	Cwd       string

	// Execution control
	Context RunContext
	Logger  zerolog.Logger
}

// NewExecutionContext creates a context with a fresh run ID and a logger
// tagged with it.
func NewExecutionContext(ctx RunContext) *ExecutionContext {
	runID := uuid.NewString()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	return &ExecutionContext{
		RunID:     runID,
		StartTime: time.Now(),
		Cwd:       cwd,
		Context:   ctx,
		Logger:    log.With().Str("run_id", runID).Logger(),
	}
}

// RunContext bundles the caller's context with the streams a run reports to.
type RunContext struct {
	Context context.Context
	StdOut  io.Writer
	StdErr  io.Writer
}
