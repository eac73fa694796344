package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"label": {"type": "string", "maxLength": 10},
		"style_id": {"type": "integer", "minimum": 1, "maximum": 10}
	},
	"required": ["label"],
	"additionalProperties": false
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.RegisterSchema("badge.json", []byte(testSchema)))

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"label": "SALE", "style_id": 3}`},
		{name: "valid without optional field", data: `{"label": "SALE"}`},
		{name: "missing required field", data: `{"style_id": 3}`, wantError: true, errorMsg: "required"},
		{name: "out of range", data: `{"label": "SALE", "style_id": 11}`, wantError: true, errorMsg: "/style_id"},
		{name: "wrong type", data: `{"label": 5}`, wantError: true, errorMsg: "/label"},
		{name: "unknown property", data: `{"label": "SALE", "colour": "red"}`, wantError: true, errorMsg: "additionalProperties"},
		{name: "malformed JSON", data: `{"label": `, wantError: true, errorMsg: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "badge.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.RegisterSchema("badge.json", []byte(testSchema)))

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"label": "HOT"}`), 0644))
	assert.NoError(t, v.ValidateFile(path, "badge.json"))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), "badge.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_Registration(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "unknown.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")

	require.NoError(t, v.RegisterSchema("badge.json", []byte(testSchema)))
	assert.Error(t, v.RegisterSchema("badge.json", []byte(testSchema)))
	assert.Error(t, v.RegisterSchema("broken.json", []byte(`{"type": `)))
}
