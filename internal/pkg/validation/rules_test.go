package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"CS101", true},
		{"CS 101", true},
		{"CS/101", true},
		{"Müh101", true},
		{" ", true},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidKey(tt.key), "%q", tt.key)
	}
}

func TestStringValidationOptional(t *testing.T) {
	assert.True(t, (&StringValidation{Required: false}).Validate())
	assert.False(t, NewStringValidation("").Validate())
}
