// Package runner drives a single dataset run: generate every record, write the
// document once, then report.
package runner

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lacquerai/datagen/internal/dataset"
	"github.com/lacquerai/datagen/internal/events"
	"github.com/lacquerai/datagen/internal/execcontext"
	"github.com/lacquerai/datagen/internal/metrics"
	"github.com/lacquerai/datagen/internal/writer"
	pkgEvents "github.com/lacquerai/datagen/pkg/events"
)

// Options configures a Runner. Zero values select the defaults.
type Options struct {
	// Path is the output file. Empty means writer.DefaultFileName(Format).
	Path   string
	Format writer.Format
	// MetricsFile, when set, receives a Prometheus textfile after the write.
	MetricsFile string

	Shape    dataset.Shape
	Source   *rand.Rand
	Listener pkgEvents.Listener
	Metrics  *metrics.Metrics
}

// Result summarizes a completed run.
type Result struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	OutputPath string        `json:"output_path" yaml:"output_path"`
	Format     writer.Format `json:"format" yaml:"format"`
	Records    int           `json:"records" yaml:"records"`
	MapEntries int           `json:"map_entries" yaml:"map_entries"`
	Collisions int           `json:"collisions" yaml:"collisions"`
	Bytes      int64         `json:"bytes" yaml:"bytes"`
	StartTime  time.Time     `json:"start_time" yaml:"start_time"`
	EndTime    time.Time     `json:"end_time" yaml:"end_time"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Runner executes dataset runs.
type Runner struct {
	opts Options
}

// NewRunner fills in defaults for any unset option.
func NewRunner(opts Options) *Runner {
	if opts.Format == "" {
		opts.Format = writer.FormatJSON
	}
	if opts.Path == "" {
		opts.Path = writer.DefaultFileName(opts.Format)
	}
	if opts.Shape == (dataset.Shape{}) {
		opts.Shape = dataset.DefaultShape
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}

	return &Runner{opts: opts}
}

// Run generates the document and writes it to the configured path.
func (r *Runner) Run(rc execcontext.RunContext) (*Result, error) {
	if rc.Context == nil {
		rc.Context = context.Background()
	}
	ec := execcontext.NewExecutionContext(rc)
	logger := ec.Logger

	source := r.opts.Source
	if source == nil {
		source = dataset.NewSource()
	}
	gen := dataset.NewGenerator(source, r.opts.Shape)

	progressChan, stop := r.listen()
	defer stop()

	emit := func(e pkgEvents.Event) {
		if progressChan == nil {
			return
		}
		e.Duration = time.Since(ec.StartTime)
		progressChan <- e
	}
	fail := func(err error) (*Result, error) {
		logger.Error().Err(err).Msg("Dataset run failed")
		emit(events.NewRunFailedEvent(ec.RunID, err))
		return nil, err
	}

	shape := gen.Shape()
	logger.Info().
		Int("records", shape.Records).
		Int("map_entries", shape.MapEntries).
		Int("string_length", shape.StringLength).
		Str("path", r.opts.Path).
		Str("format", string(r.opts.Format)).
		Str("cwd", ec.Cwd).
		Msg("Generating dataset")
	emit(events.NewGenerationStartedEvent(ec.RunID, shape.Records))

	doc, err := gen.Document(rc.Context, func(done, total int) {
		emit(events.NewGenerationProgressEvent(ec.RunID, done, total))
	})
	if err != nil {
		return fail(fmt.Errorf("generation interrupted: %w", err))
	}

	stats := gen.Stats()
	logger.Debug().
		Int("records", stats.Records).
		Int("map_entries", stats.MapEntries).
		Int("collisions", stats.Collisions).
		Dur("elapsed", time.Since(ec.StartTime)).
		Msg("Generation complete")
	emit(events.NewGenerationCompletedEvent(ec.RunID, stats.Records, shape.Records))

	emit(events.NewWriteStartedEvent(ec.RunID, r.opts.Path))
	n, err := writer.WriteFile(r.opts.Path, r.opts.Format, doc)
	if err != nil {
		return fail(err)
	}

	end := time.Now()
	result := &Result{
		RunID:      ec.RunID,
		OutputPath: r.opts.Path,
		Format:     r.opts.Format,
		Records:    len(doc.Tests),
		MapEntries: stats.MapEntries,
		Collisions: stats.Collisions,
		Bytes:      n,
		StartTime:  ec.StartTime,
		EndTime:    end,
		Duration:   end.Sub(ec.StartTime),
	}
	emit(events.NewWriteCompletedEvent(ec.RunID, r.opts.Path, n, result.Records, shape.Records))

	r.opts.Metrics.ObserveGeneration(stats)
	r.opts.Metrics.ObserveWrite(string(r.opts.Format), n, result.Duration, end)
	if r.opts.MetricsFile != "" {
		if err := r.opts.Metrics.WriteTextfile(r.opts.MetricsFile); err != nil {
			return fail(err)
		}
	}

	logger.Info().
		Int64("bytes", n).
		Dur("duration", result.Duration).
		Int("collisions", stats.Collisions).
		Msg("Dataset written")

	return result, nil
}

// listen starts the configured listener. The returned stop closes the channel
// and waits for the listener to finish.
func (r *Runner) listen() (chan<- pkgEvents.Event, func()) {
	if r.opts.Listener == nil {
		return nil, func() {}
	}

	ch := make(chan pkgEvents.Event, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.opts.Listener.StartListening(ch)
	}()

	return ch, func() {
		close(ch)
		<-done
		r.opts.Listener.StopListening()
	}
}
