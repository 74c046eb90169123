// Package dataset builds the synthetic test documents consumed by the
// serialization benchmarks.
package dataset

// Document is the root value written to disk. It always serializes as an
// object with the single key "tests".
type Document struct {
	// Tests holds the generated records in generation order.
	Tests []Record `json:"tests" yaml:"tests"`
}

// Record is one synthetic test case.
type Record struct {
	// ID is a random integer in [0, MaxValue).
	ID int `json:"id" yaml:"id" jsonschema:"minimum=0,exclusiveMaximum=100000"`
	// Frac is a random float in [0.0, 1.0).
	Frac float64 `json:"frac" yaml:"frac" jsonschema:"minimum=0,exclusiveMaximum=1"`
	// Name is a random string over the letters a-z and A-Z.
	Name string `json:"name" yaml:"name" jsonschema:"pattern=^[a-zA-Z]{30}$"`
	// Maps associates random letter strings with random integers in [0, MaxValue).
	Maps map[string]int `json:"maps" yaml:"maps"`
}

// Shape fixes the dimensions of a generated document.
type Shape struct {
	Records      int
	StringLength int
	MapEntries   int
	MaxValue     int
}

// DefaultShape is the shape every dataset run produces.
var DefaultShape = Shape{
	Records:      10000,
	StringLength: 30,
	MapEntries:   1000,
	MaxValue:     100000,
}

// Stats counts what a Generator has produced so far.
type Stats struct {
	Records    int `json:"records" yaml:"records"`
	MapEntries int `json:"map_entries" yaml:"map_entries"`
	// Collisions counts map insertions that replaced an existing key.
	Collisions int `json:"collisions" yaml:"collisions"`
}
