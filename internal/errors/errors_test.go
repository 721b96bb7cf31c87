package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{ErrConfig, ErrInput, ErrRender}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .spiplot.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "input error",
			code:       ErrInput,
			message:    "MOSI & MISO lengths don't match",
			suggestion: "Pass the same number of bytes for both lines",
		},
		{
			name:       "render error",
			code:       ErrRender,
			message:    "Decoded bits don't match the input",
			suggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid configuration", "Check .spiplot.yaml syntax"),
			expectedParts: []string{"✗ Invalid configuration", "Check .spiplot.yaml syntax"},
		},
		{
			name:          "cause is included",
			err:           WrapWithCode(fmt.Errorf("bad token %q", "zz"), ErrInput, "Can't parse bytes", "Use hex like A5 or 0xA5"),
			expectedParts: []string{"Can't parse bytes", `bad token "zz"`, "Use hex like A5"},
		},
		{
			name:          "empty suggestion is omitted",
			err:           New(ErrRender, "Render failed", ""),
			expectedParts: []string{"✗ Render failed\n"},
			notExpected:   []string{"\n\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, out, part)
			}
			for _, part := range tt.notExpected {
				assert.False(t, strings.Contains(out, part), "unexpected %q in %q", part, out)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapWithCode(cause, ErrConfig, "wrapped", "")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsCode(t *testing.T) {
	err := New(ErrInput, "bad input", "")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsCode(err, ErrInput))
	assert.True(t, IsCode(wrapped, ErrInput))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrInput))
	assert.False(t, IsCode(errors.New("plain"), ErrInput))
}
