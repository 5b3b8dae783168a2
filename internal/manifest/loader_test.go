package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City   string
	Street string
}

type form struct {
	Title string

	addr *address
}

func (f *form) Address() *address {
	return f.addr
}

func TestParse(t *testing.T) {
	data := `
bindings:
  - field: Title
    rules: [required, max_length]
  - field: Address.City
    rules: [required]
`

	f, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version, "version should default")
	require.Len(t, f.Bindings, 2)
	assert.Equal(t, "Title", f.Bindings[0].Field)
	assert.Equal(t, []string{"required", "max_length"}, f.Bindings[0].Rules)
	assert.Equal(t, "Address.City", f.Bindings[1].Field)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("bindings: {not: [a, list"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	f := &File{Bindings: []Binding{{Field: "Title"}, {Field: "Title"}}}
	assert.ErrorContains(t, f.Validate(), "duplicate field path")

	f = &File{Bindings: []Binding{{Field: ""}}}
	assert.ErrorContains(t, f.Validate(), "empty field path")

	f = &File{Bindings: []Binding{{Field: "Title"}, {Field: "Address.City"}}}
	assert.NoError(t, f.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bindings:\n  - field: Title\n"), 0644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Bindings, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read manifest")
}

func TestResolve(t *testing.T) {
	model := &form{Title: "Contact", addr: &address{City: "Oslo"}}

	f := &File{Bindings: []Binding{
		{Field: "Title", Rules: []string{"required"}},
		{Field: "Address.City", Rules: []string{"required"}},
		{Field: "Address.Street"},
	}}

	bound, err := f.Resolve(model)
	require.NoError(t, err)
	require.Len(t, bound, 3)
	t.Log(spew.Sdump(bound))

	assert.Same(t, model, bound[0].ID.Owner())
	assert.Equal(t, "Title", bound[0].ID.Name())
	assert.Equal(t, []string{"required"}, bound[0].Rules)

	assert.Same(t, model.addr, bound[1].ID.Owner())
	assert.Equal(t, "City", bound[1].ID.Name())

	// Two paths through the same owner resolve to distinct identifiers
	// that share the owner reference.
	assert.Same(t, bound[1].ID.Owner(), bound[2].ID.Owner())
	assert.False(t, bound[1].ID.Equal(bound[2].ID))
}

func TestResolveUnknownPath(t *testing.T) {
	model := &form{addr: &address{}}

	f := &File{Bindings: []Binding{{Field: "Address.Country"}}}

	_, err := f.Resolve(model)
	assert.ErrorContains(t, err, `binding "Address.Country"`)
}

func TestResolveFailsValidation(t *testing.T) {
	f := &File{Bindings: []Binding{{Field: "Title"}, {Field: "Title"}}}

	_, err := f.Resolve(&form{})
	assert.ErrorContains(t, err, "duplicate field path")
}
