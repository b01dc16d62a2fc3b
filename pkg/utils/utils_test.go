package utils

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(ErrConfigValidation, "bad field '%s'", "format")

	assert.True(t, errors.Is(err, ErrConfigValidation))
	assert.Contains(t, err.Error(), "bad field 'format'")
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "None"},
		{"config validation", WrapErrorf(ErrConfigValidation, "x"), "Config_Validation"},
		{"markdown render", fmt.Errorf("%w: boom", ErrMarkdownRender), "Content_MarkdownRender"},
		{"markdown conversion", fmt.Errorf("%w: boom", ErrMarkdownConversion), "Content_Markdown"},
		{"parsing", fmt.Errorf("%w: bad marker", ErrParsing), "Content_Parsing"},
		{"filesystem not exist", fmt.Errorf("%w: %w", ErrFilesystem, os.ErrNotExist), "Filesystem_NotExist"},
		{"filesystem permission", fmt.Errorf("%w: %w", ErrFilesystem, os.ErrPermission), "Filesystem_Permission"},
		{"filesystem other", fmt.Errorf("%w: disk full", ErrFilesystem), "Filesystem_Other"},
		{"yaml fallback", errors.New("yaml: line 3: mapping values"), "Config_Parse"},
		{"unknown", errors.New("something else"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategorizeError(tt.err))
		})
	}
}
