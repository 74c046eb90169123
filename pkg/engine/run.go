// Package engine provides a public API for generating datagen datasets
// programmatically. It runs the same pipeline as the datagen command: one
// document of random records written to a single file.
//
// Example usage:
//
//	// Write json_init.json in the current directory
//	result, err := engine.Generate()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath, result.Bytes)
//
//	// Write YAML somewhere else and watch progress
//	result, err = engine.Generate(
//		engine.WithPath("/tmp/data.yaml"),
//		engine.WithFormat("yaml"),
//		engine.WithProgressListener(listener),
//	)
package engine

import (
	"context"
	"io"
	"math/rand/v2"

	"github.com/lacquerai/datagen/internal/dataset"
	"github.com/lacquerai/datagen/internal/execcontext"
	"github.com/lacquerai/datagen/internal/runner"
	"github.com/lacquerai/datagen/internal/writer"
	"github.com/lacquerai/datagen/pkg/events"
)

// Result summarizes a completed run.
type Result = runner.Result

// Option represents a functional option for configuring a run.
type Option func(*config)

type config struct {
	ctx    context.Context
	format string
	opts   runner.Options
}

// WithProgressListener registers a listener that receives run events as the
// document is generated and written. StopListening is called once the run
// finishes, successfully or not.
//
// Example:
//
//	type MyListener struct{}
//
//	func (l *MyListener) StartListening(progressChan <-chan events.Event) {
//		for event := range progressChan {
//			fmt.Printf("Event: %s at %s\n", event.Type, event.Timestamp)
//		}
//	}
//
//	func (l *MyListener) StopListening() {
//		fmt.Println("Progress tracking stopped")
//	}
func WithProgressListener(listener events.Listener) Option {
	return func(c *config) {
		c.opts.Listener = listener
	}
}

// WithPath sets the output file. The default is json_init.<format> in the
// current directory.
func WithPath(path string) Option {
	return func(c *config) {
		c.opts.Path = path
	}
}

// WithFormat selects the serialization, "json" or "yaml".
func WithFormat(format string) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithMetricsFile writes a Prometheus textfile with the run's metrics after
// the dataset is written.
func WithMetricsFile(path string) Option {
	return func(c *config) {
		c.opts.MetricsFile = path
	}
}

// WithContext sets a context whose cancellation aborts generation before the
// output file is touched.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithSource replaces the randomness source. Two runs with identically seeded
// sources produce identical documents.
func WithSource(source *rand.Rand) Option {
	return func(c *config) {
		c.opts.Source = source
	}
}

// Generate builds a document of 10000 random records and writes it to a
// single file, replacing any previous content.
//
// Errors can occur due to:
//   - An unknown format
//   - A cancelled context
//   - The output file not being creatable or writable
func Generate(options ...Option) (*Result, error) {
	c := &config{
		ctx: context.Background(),
		opts: runner.Options{
			Shape: dataset.DefaultShape,
		},
	}

	for _, option := range options {
		option(c)
	}

	format, err := writer.ParseFormat(c.format)
	if err != nil {
		return nil, err
	}
	c.opts.Format = format

	return runner.NewRunner(c.opts).Run(execcontext.RunContext{
		Context: c.ctx,
		StdOut:  io.Discard,
		StdErr:  io.Discard,
	})
}
