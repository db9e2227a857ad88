package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/fwgen/internal/codegen/target"
	"github.com/Alia5/fwgen/internal/schema"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"name", "name"},
		{"firstName", "firstName"},
		{"FirstName", "firstName"},
		{"first name", "firstName"},
		{"remaining   balance", "remainingBalance"},
		{"daily transaction limit", "dailyTransactionLimit"},
		{"student_name", "student_name"},
		{"price$", "price$"},
		{"e-mail", "email"},
		{"1st place", "stPlace"},
		{"2024", "unknown"},
		{"???", "unknown"},
		{"", "unknown"},
		{"_private", "_private"},
		{"über", "ber"},
		{"a\u00a0b", "ab"},
		{"first\tname", "firstName"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.NormalizeName(tt.raw, nil))
		})
	}
}

func TestNormalizeNameGoDropsDollar(t *testing.T) {
	lang, err := target.Builtin().Lookup("go")
	require.NoError(t, err)
	assert.Equal(t, "price", schema.NormalizeName("price$", lang))
	assert.Equal(t, "totalAmount", schema.NormalizeName("total $ amount", lang))
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	inputs := []string{
		"name", "First Name", "1Abc", "123 abc", "a b c", "$$ value", "9_lives",
		"x1 2y", "__init__", "über cool", "UPPER CASE", "!!!", "a$b c$d",
	}
	for _, lang := range target.Builtin().Names() {
		dialect, err := target.Builtin().Lookup(lang)
		require.NoError(t, err)
		for _, in := range inputs {
			once := schema.NormalizeName(in, dialect)
			twice := schema.NormalizeName(once, dialect)
			assert.Equal(t, once, twice, "target %s, input %q", lang, in)
			assert.NotEmpty(t, once)
		}
	}
}
