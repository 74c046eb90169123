// Package writer serializes generated documents to disk.
package writer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lacquerai/datagen/internal/dataset"
	"gopkg.in/yaml.v3"
)

// Format is an output serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

const defaultBaseName = "json_init"

// ParseFormat maps a user supplied name onto a Format. An empty name is JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected json or yaml)", ErrUnknownFormat, s)
	}
}

// DefaultFileName returns the file name used when no path is given.
func DefaultFileName(f Format) string {
	return defaultBaseName + "." + string(f)
}

// Encoder writes a document to w.
type Encoder interface {
	Encode(w io.Writer, doc *dataset.Document) error
}

type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, doc *dataset.Document) error {
	return json.NewEncoder(w).Encode(doc)
}

type yamlEncoder struct{}

func (yamlEncoder) Encode(w io.Writer, doc *dataset.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// NewEncoder returns the encoder for f.
func NewEncoder(f Format) (Encoder, error) {
	switch f {
	case FormatJSON:
		return jsonEncoder{}, nil
	case FormatYAML:
		return yamlEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteFile encodes doc to path, replacing any previous content, and returns
// the number of bytes written. On failure the file may be left truncated.
func WriteFile(path string, f Format, doc *dataset.Document) (n int64, err error) {
	enc, err := NewEncoder(f)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", path, cerr)
		}
	}()

	cw := &countingWriter{w: file}
	bw := bufio.NewWriterSize(cw, 1<<20)

	if err := enc.Encode(bw, doc); err != nil {
		return cw.n, fmt.Errorf("failed to encode %s document: %w", f, err)
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	if err := file.Sync(); err != nil {
		return cw.n, fmt.Errorf("failed to sync output file %s: %w", path, err)
	}

	return cw.n, nil
}
