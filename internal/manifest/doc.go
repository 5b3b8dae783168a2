// Package manifest provides YAML schema definitions, parsing, and
// resolution for declarative binding sets.
//
// A manifest names the member paths of a model that a form tracks,
// together with the rule names a validator should run for each:
//
//	version: "1"
//	bindings:
//	  - field: Title
//	    rules: [required, max_length]
//	  - field: Address.City
//	    rules: [required]
//
// Resolve binds each declared path against a live model instance,
// producing the field identifiers that key validation state.
package manifest
