package dataset

import (
	"context"
	"math/rand/v2"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ProgressFunc is called while a document is being generated.
type ProgressFunc func(done, total int)

// Generator produces random records from a single random source.
// It is not safe for concurrent use.
type Generator struct {
	rand  *rand.Rand
	shape Shape
	stats Stats
}

// NewGenerator returns a Generator drawing from r. A zero shape falls back to
// DefaultShape.
func NewGenerator(r *rand.Rand, shape Shape) *Generator {
	if shape == (Shape{}) {
		shape = DefaultShape
	}

	return &Generator{rand: r, shape: shape}
}

// NewSource returns a random source seeded from the runtime generator, so
// every call yields a different sequence.
func NewSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (g *Generator) Shape() Shape {
	return g.shape
}

func (g *Generator) Stats() Stats {
	return g.stats
}

// RandomString returns StringLength letters chosen uniformly from a-z and A-Z.
func (g *Generator) RandomString() string {
	b := make([]byte, g.shape.StringLength)
	for i := range b {
		b[i] = letters[g.rand.IntN(len(letters))]
	}
	return string(b)
}

// RandomMapping performs MapEntries insertions of random keys and values.
// Keys that collide overwrite the earlier value, so the result may hold fewer
// than MapEntries entries.
func (g *Generator) RandomMapping() map[string]int {
	m := make(map[string]int, g.shape.MapEntries)
	for i := 0; i < g.shape.MapEntries; i++ {
		k := g.RandomString()
		if _, ok := m[k]; ok {
			g.stats.Collisions++
		}
		m[k] = g.rand.IntN(g.shape.MaxValue)
		g.stats.MapEntries++
	}
	return m
}

// Record draws one record.
func (g *Generator) Record() Record {
	r := Record{
		ID:   g.rand.IntN(g.shape.MaxValue),
		Frac: g.rand.Float64(),
		Name: g.RandomString(),
		Maps: g.RandomMapping(),
	}
	g.stats.Records++
	return r
}

// Document generates Records records in sequence. progress may be nil.
func (g *Generator) Document(ctx context.Context, progress ProgressFunc) (*Document, error) {
	total := g.shape.Records
	every := total / 100
	if every < 1 {
		every = 1
	}

	doc := &Document{Tests: make([]Record, 0, total)}
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc.Tests = append(doc.Tests, g.Record())

		done := i + 1
		if progress != nil && (done%every == 0 || done == total) {
			progress(done, total)
		}
	}

	return doc, nil
}
