package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-binder/expr"
)

func TestParsePath(t *testing.T) {
	valid := []struct {
		path string
		want []string
	}{
		{"Title", []string{"Title"}},
		{"Address.City", []string{"Address", "City"}},
		{"Company.HQ.Addr.City", []string{"Company", "HQ", "Addr", "City"}},
		{"_private.Value2", []string{"_private", "Value2"}},
	}

	for _, tc := range valid {
		got, err := expr.ParsePath(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got)
	}

	invalid := []string{
		"",
		".",
		"Title.",
		".Title",
		"Address..City",
		"1Field",
		"Items[]",
		"a b",
	}

	for _, path := range invalid {
		_, err := expr.ParsePath(path)
		assert.Error(t, err, "path %q should be rejected", path)
	}
}
