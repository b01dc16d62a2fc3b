package config

// ProfileConfig holds per-document-set overrides for the TOC filter.
// Pointer fields distinguish "unset, use global" from an explicit value.
type ProfileConfig struct {
	MinLevel       *int    `yaml:"min_level,omitempty"`
	MaxLevel       *int    `yaml:"max_level,omitempty"`
	ChapterNumbers *bool   `yaml:"chapter_numbers,omitempty"`
	Prefix         *string `yaml:"prefix,omitempty"`
	EmitHeadingID  *bool   `yaml:"emit_heading_id,omitempty"`
	Format         string  `yaml:"format,omitempty"`     // "html" or "markdown"
	OutputDir      string  `yaml:"output_dir,omitempty"` // Overrides the global output directory
}

// AppConfig holds the global application configuration
type AppConfig struct {
	MinLevel       int                      `yaml:"min_level,omitempty"`
	MaxLevel       int                      `yaml:"max_level,omitempty"`
	ChapterNumbers bool                     `yaml:"chapter_numbers,omitempty"`
	Prefix         string                   `yaml:"prefix,omitempty"`
	EmitHeadingID  bool                     `yaml:"emit_heading_id,omitempty"`
	Format         string                   `yaml:"format,omitempty"` // Default input format: "html" or "markdown"
	NumWorkers     int                      `yaml:"num_workers,omitempty"`
	OutputDir      string                   `yaml:"output_dir,omitempty"`
	Profiles       map[string]ProfileConfig `yaml:"profiles,omitempty"`
}

// GetEffectiveMinLevel determines the effective minimum heading level
func GetEffectiveMinLevel(profileCfg ProfileConfig, appCfg AppConfig) int {
	if profileCfg.MinLevel != nil {
		return *profileCfg.MinLevel
	}
	return appCfg.MinLevel
}

// GetEffectiveMaxLevel determines the effective maximum heading level
func GetEffectiveMaxLevel(profileCfg ProfileConfig, appCfg AppConfig) int {
	if profileCfg.MaxLevel != nil {
		return *profileCfg.MaxLevel
	}
	return appCfg.MaxLevel
}

// GetEffectiveChapterNumbers determines whether chapter numbering is enabled
func GetEffectiveChapterNumbers(profileCfg ProfileConfig, appCfg AppConfig) bool {
	if profileCfg.ChapterNumbers != nil {
		return *profileCfg.ChapterNumbers
	}
	return appCfg.ChapterNumbers
}

// GetEffectivePrefix determines the numbering display prefix
func GetEffectivePrefix(profileCfg ProfileConfig, appCfg AppConfig) string {
	if profileCfg.Prefix != nil {
		return *profileCfg.Prefix
	}
	return appCfg.Prefix
}

// GetEffectiveEmitHeadingID determines whether rewritten headings also get an id attribute
func GetEffectiveEmitHeadingID(profileCfg ProfileConfig, appCfg AppConfig) bool {
	if profileCfg.EmitHeadingID != nil {
		return *profileCfg.EmitHeadingID
	}
	return appCfg.EmitHeadingID
}

// GetEffectiveFormat determines the input format
// Profile config (if non-empty) overrides global
func GetEffectiveFormat(profileCfg ProfileConfig, appCfg AppConfig) string {
	if profileCfg.Format != "" {
		return profileCfg.Format
	}
	return appCfg.Format
}

// GetEffectiveOutputDir determines the output directory
func GetEffectiveOutputDir(profileCfg ProfileConfig, appCfg AppConfig) string {
	if profileCfg.OutputDir != "" {
		return profileCfg.OutputDir
	}
	return appCfg.OutputDir
}
