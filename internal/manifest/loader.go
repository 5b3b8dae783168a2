package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"form-binder/expr"
	"form-binder/field"
)

// LoadFile loads and parses a YAML binding manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Bound pairs a resolved field identifier with its declared rule names.
type Bound struct {
	ID    field.Identifier
	Rules []string
}

// Resolve binds every declared path against the live model, yielding the
// field identifiers a form keys its validation state by. The first
// failing binding aborts the whole resolution.
func (f *File) Resolve(model any) ([]Bound, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	result := make([]Bound, 0, len(f.Bindings))

	for _, b := range f.Bindings {
		names, err := expr.ParsePath(b.Field)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Field, err)
		}

		chain, err := expr.Chain(model, names...)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Field, err)
		}

		id, err := field.FromAccessor(chain)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Field, err)
		}

		result = append(result, Bound{ID: id, Rules: b.Rules})
	}

	return result, nil
}
