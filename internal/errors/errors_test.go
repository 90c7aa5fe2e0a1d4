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
	codes := []string{
		ErrConfig,
		ErrFetch,
		ErrParse,
		ErrRender,
	}

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
			message:    "Resolution must be at least 1",
			suggestion: "Set resolution to a value between 1 and 60",
		},
		{
			name:       "fetch error",
			code:       ErrFetch,
			message:    "timew export failed",
			suggestion: "Run 'dayline doctor' to check the data source",
		},
		{
			name:       "parse error",
			code:       ErrParse,
			message:    "Record 3 has an invalid start timestamp",
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
	cause := fmt.Errorf("exit status 2")
	err := WrapWithCode(cause, ErrFetch, "Couldn't export tracked time", "Check that timew is installed")

	out := err.Error()
	lines := strings.Split(out, "\n")
	assert.Equal(t, "✗ Couldn't export tracked time", lines[0])
	assert.Contains(t, out, "  exit status 2")
	assert.Contains(t, out, "  Check that timew is installed")
}

func TestErrorFormattingWithoutSuggestion(t *testing.T) {
	err := New(ErrParse, "bad timestamp", "")
	assert.Equal(t, "✗ bad timestamp\n", err.Error())
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapWithCode(sentinel, ErrConfig, "wrapped", "")
	assert.True(t, errors.Is(err, sentinel))
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "bad", "")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsCode(err, ErrConfig))
	assert.True(t, IsCode(wrapped, ErrConfig))
	assert.False(t, IsCode(err, ErrFetch))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(errors.New("plain"), ErrConfig))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrParse, CodeOf(New(ErrParse, "x", "")))
	assert.Equal(t, ErrRender, CodeOf(fmt.Errorf("ctx: %w", New(ErrRender, "x", ""))))
	assert.Empty(t, CodeOf(errors.New("plain")))
	assert.Empty(t, CodeOf(nil))
}

func TestMessageOf(t *testing.T) {
	err := WrapWithCode(errors.New("exit status 1"), ErrFetch, "'timew export' failed", "Install it")

	assert.Equal(t, "'timew export' failed", MessageOf(err))
	assert.Equal(t, "'timew export' failed", MessageOf(fmt.Errorf("ctx: %w", err)))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
}
