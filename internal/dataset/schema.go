package dataset

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/stoewer/go-strcase"
)

// NewReflector returns a reflector that names definitions and keys in snake case.
func NewReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		KeyNamer: strcase.SnakeCase,
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		ExpandedStruct: true,
	}
}

// Schema returns the indented JSON Schema of Document.
func Schema() ([]byte, error) {
	s := NewReflector().Reflect(&Document{})
	s.Title = "datagen document"
	s.Description = "Synthetic test dataset with a single \"tests\" array of records."
	return json.MarshalIndent(s, "", "  ")
}
