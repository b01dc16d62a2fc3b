package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// --- Sentinel Errors for Categorization ---
var (
	ErrConfigValidation   = errors.New("configuration validation error")
	ErrFilesystem         = errors.New("filesystem error") // Wraps os errors
	ErrParsing            = errors.New("parsing error")    // Wraps HTML/option parsing errors
	ErrMarkdownRender     = errors.New("failed to render markdown to HTML")
	ErrMarkdownConversion = errors.New("failed to convert HTML to markdown")
)

// WrapErrorf wraps a sentinel error with formatted context.
func WrapErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)
}

// CategorizeError maps an error to a predefined category string for
// batch-summary logging.
func CategorizeError(err error) string {
	if err == nil {
		return "None"
	}

	switch {
	case errors.Is(err, ErrConfigValidation):
		return "Config_Validation"
	case errors.Is(err, ErrMarkdownRender):
		return "Content_MarkdownRender"
	case errors.Is(err, ErrMarkdownConversion):
		return "Content_Markdown"
	case errors.Is(err, ErrParsing):
		return "Content_Parsing"
	case errors.Is(err, ErrFilesystem):
		if errors.Is(err, os.ErrPermission) {
			return "Filesystem_Permission"
		}
		if errors.Is(err, os.ErrNotExist) {
			return "Filesystem_NotExist"
		}
		return "Filesystem_Other"
	}

	// Fallback checks for common underlying error strings
	if strings.Contains(strings.ToLower(err.Error()), "yaml") {
		return "Config_Parse"
	}

	return "Unknown"
}
