package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-binder/field"
	"form-binder/validation"
)

type order struct {
	Status   string
	Quantity int
}

func makeID(t *testing.T, owner any, name string) field.Identifier {
	t.Helper()

	id, err := field.New(owner, name)
	require.NoError(t, err)

	return id
}

func TestStoreAddAndQuery(t *testing.T) {
	o := &order{}
	status := makeID(t, o, "Status")
	quantity := makeID(t, o, "Quantity")

	s := validation.NewStore()
	assert.False(t, s.HasErrors())
	assert.NoError(t, s.Error())

	s.AddError(status, "required", "status must not be empty")
	s.AddWarning(status, "deprecated", "status will be replaced by state")
	s.AddInfo(quantity, "hint", "defaults to 1")

	assert.Len(t, s.Messages(status), 2)
	assert.Len(t, s.Messages(quantity), 1)
	assert.True(t, s.HasErrors())
	assert.False(t, s.IsValid(status))
	assert.True(t, s.IsValid(quantity))
}

func TestStoreKeysByIdentity(t *testing.T) {
	first := &order{}
	second := &order{}

	s := validation.NewStore()
	s.AddError(makeID(t, first, "Status"), "required", "missing")

	// Same name on a structurally equal but distinct owner is a different key.
	assert.Empty(t, s.Messages(makeID(t, second, "Status")))
	assert.Len(t, s.Messages(makeID(t, first, "Status")), 1)
}

func TestStoreFieldsOrder(t *testing.T) {
	o := &order{}
	status := makeID(t, o, "Status")
	quantity := makeID(t, o, "Quantity")

	s := validation.NewStore()
	s.AddError(status, "required", "missing")
	s.AddError(quantity, "range", "must be positive")
	s.AddWarning(status, "deprecated", "renamed")

	assert.Equal(t, []field.Identifier{status, quantity}, s.Fields())
}

func TestStoreClearAndReset(t *testing.T) {
	o := &order{}
	status := makeID(t, o, "Status")
	quantity := makeID(t, o, "Quantity")

	s := validation.NewStore()
	s.AddError(status, "required", "missing")
	s.AddError(quantity, "range", "must be positive")

	s.Clear(status)
	assert.Empty(t, s.Messages(status))
	assert.Equal(t, []field.Identifier{quantity}, s.Fields())
	assert.True(t, s.HasErrors())

	s.Reset()
	assert.False(t, s.HasErrors())
	assert.Empty(t, s.Fields())
}

func TestStoreError(t *testing.T) {
	o := &order{}
	status := makeID(t, o, "Status")

	s := validation.NewStore()
	s.AddInfo(status, "hint", "optional")
	require.NoError(t, s.Error())

	s.AddError(status, "required", "status must not be empty")

	err := s.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Status")
	assert.Contains(t, err.Error(), "[required] status must not be empty")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", validation.SeverityInfo.String())
	assert.Equal(t, "warning", validation.SeverityWarning.String())
	assert.Equal(t, "error", validation.SeverityError.String())
	assert.Equal(t, "unknown", validation.Severity(42).String())
}
