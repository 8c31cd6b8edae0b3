package prefsxml

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorVariables(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUsage", ErrUsage, "missing xml path argument"},
		{"ErrUnknownFlag", ErrUnknownFlag, "unknown flag"},
		{"ErrArity", ErrArity, "requires key and value"},
		{"ErrInvalidBoolean", ErrInvalidBoolean, "boolean must be true/false"},
		{"ErrInvalidKind", ErrInvalidKind, "invalid entry kind"},
		{"ErrNotFound", ErrNotFound, "preferences file not found"},
		{"ErrMalformed", ErrMalformed, "malformed preferences document"},
		{"ErrStorageUnavailable", ErrStorageUnavailable, "storage backend unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIsUsageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"usage", ErrUsage, true},
		{"wrapped unknown flag", fmt.Errorf("%w: --int", ErrUnknownFlag), true},
		{"wrapped arity", fmt.Errorf("--bool %w", ErrArity), true},
		{"wrapped boolean", fmt.Errorf("%w for k", ErrInvalidBoolean), true},
		{"storage", ErrStorageUnavailable, false},
		{"malformed", ErrMalformed, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUsageError(tt.err))
		})
	}
}
