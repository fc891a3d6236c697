// Package am loads sfcgen configuration ("I am"): defaults, user and
// project config files, and SFCGEN_* environment variables, merged by viper.
package am

import "github.com/teranos/sfcgen/sfc"

// Config represents the sfcgen configuration
type Config struct {
	Export ExportConfig `mapstructure:"export"`
	Log    LogConfig    `mapstructure:"log"`
}

// ExportConfig configures component file generation
type ExportConfig struct {
	Typescript   string       `mapstructure:"typescript"`    // "on" selects the typed script variant; any other value is off
	Extension    string       `mapstructure:"extension"`     // File extension without dot (default: vue)
	ComponentDir string       `mapstructure:"component_dir"` // Import prefix for child components (default: @/components)
	AtomicWrite  bool         `mapstructure:"atomic_write"`  // Write to a temp file and rename (default: true)
	StrictRefs   bool         `mapstructure:"strict_refs"`   // Reject bare tags that are not child components (default: false)
	Dialog       DialogConfig `mapstructure:"dialog"`
}

// DialogConfig holds the texts of the destination prompt
type DialogConfig struct {
	Title          string `mapstructure:"title"`
	Message        string `mapstructure:"message"`
	NameFieldLabel string `mapstructure:"name_field_label"`
}

// LogConfig configures console logging
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`  // Structured JSON logs instead of console output
	Theme string `mapstructure:"theme"` // Console color theme: gruvbox, everforest
}

// GeneratorOptions converts the export section into generator options
func (c *Config) GeneratorOptions() sfc.Options {
	return sfc.Options{
		Typescript:   sfc.TypescriptEnabled(c.Export.Typescript),
		ComponentDir: c.Export.ComponentDir,
		Extension:    c.Export.Extension,
		StrictRefs:   c.Export.StrictRefs,
	}
}
