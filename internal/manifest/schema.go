package manifest

import "fmt"

// File represents the root of a YAML binding manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Bindings is the list of tracked member paths.
	Bindings []Binding `yaml:"bindings"`
}

// Binding declares one tracked member path on the model, with the rule
// names a validator should run for it.
type Binding struct {
	// Field is the dotted member path (e.g., "Title", "Address.City").
	Field string `yaml:"field"`

	// Rules lists validation rule names, by reference only; rule
	// semantics live with the validator.
	Rules []string `yaml:"rules,omitempty"`
}

// Validate checks the manifest for structural problems before any
// binding is resolved.
func (f *File) Validate() error {
	seen := make(map[string]struct{})

	for i, b := range f.Bindings {
		if b.Field == "" {
			return fmt.Errorf("binding %d: empty field path", i)
		}

		if _, ok := seen[b.Field]; ok {
			return fmt.Errorf("binding %d: duplicate field path %q", i, b.Field)
		}

		seen[b.Field] = struct{}{}
	}

	return nil
}
