package config

import (
	"fmt"

	"toc-filter/pkg/utils"
)

// FormatHTML and FormatMarkdown are the supported input formats
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Validate checks AppConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *AppConfig) Validate() (warnings []string, err error) {
	// MinLevel
	if c.MinLevel == 0 {
		c.MinLevel = 1
	} else if c.MinLevel < 0 {
		warnings = append(warnings, "min_level cannot be negative, defaulting to 1")
		c.MinLevel = 1
	}

	// MaxLevel
	if c.MaxLevel == 0 {
		c.MaxLevel = 6
	} else if c.MaxLevel > 6 {
		warnings = append(warnings, fmt.Sprintf("max_level %d exceeds 6, clamping to 6", c.MaxLevel))
		c.MaxLevel = 6
	}

	if c.MinLevel > c.MaxLevel {
		warnings = append(warnings, fmt.Sprintf(
			"min_level (%d) > max_level (%d): no headings will ever match",
			c.MinLevel, c.MaxLevel))
	}

	// Format
	if c.Format == "" {
		c.Format = FormatHTML
	}
	if c.Format != FormatHTML && c.Format != FormatMarkdown {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"format must be '%s' or '%s', got '%s'", FormatHTML, FormatMarkdown, c.Format)
	}

	// NumWorkers
	if c.NumWorkers <= 0 {
		warnings = append(warnings, "num_workers should be > 0, defaulting to 4")
		c.NumWorkers = 4
	}

	// OutputDir
	if c.OutputDir == "" {
		warnings = append(warnings, "output_dir is empty, defaulting to './toc_out'")
		c.OutputDir = "./toc_out"
	}

	// Profiles
	for key, profileCfg := range c.Profiles {
		profileWarnings, profileErr := profileCfg.Validate()
		if profileErr != nil {
			return warnings, fmt.Errorf("profile '%s': %w", key, profileErr)
		}
		for _, w := range profileWarnings {
			warnings = append(warnings, fmt.Sprintf("profile '%s': %s", key, w))
		}
	}

	return warnings, nil
}

// Validate checks ProfileConfig fields.
// Returns collected warnings and any fatal error.
func (c *ProfileConfig) Validate() (warnings []string, err error) {
	if c.MinLevel != nil && *c.MinLevel < 1 {
		warnings = append(warnings, fmt.Sprintf("min_level %d is below 1, headings below h1 do not exist", *c.MinLevel))
	}
	if c.MaxLevel != nil && *c.MaxLevel > 6 {
		warnings = append(warnings, fmt.Sprintf("max_level %d exceeds 6, headings above h6 do not exist", *c.MaxLevel))
	}
	if c.MinLevel != nil && c.MaxLevel != nil && *c.MinLevel > *c.MaxLevel {
		warnings = append(warnings, fmt.Sprintf(
			"min_level (%d) > max_level (%d): no headings will ever match",
			*c.MinLevel, *c.MaxLevel))
	}

	if c.Format != "" && c.Format != FormatHTML && c.Format != FormatMarkdown {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"format must be '%s' or '%s', got '%s'", FormatHTML, FormatMarkdown, c.Format)
	}

	return warnings, nil
}
