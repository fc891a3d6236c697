package am

import (
	"strings"

	"github.com/teranos/sfcgen/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	ext := c.Export.Extension
	if ext == "" {
		return errors.New("export.extension cannot be empty")
	}
	if strings.ContainsAny(ext, `./\`) {
		return errors.WithHint(
			errors.Newf("export.extension must be a bare extension, got %q", ext),
			`write "vue", not ".vue"`)
	}

	if strings.TrimSpace(c.Export.ComponentDir) == "" {
		return errors.New("export.component_dir cannot be empty")
	}

	switch strings.ToLower(c.Log.Theme) {
	case "", "gruvbox", "everforest":
	default:
		return errors.Newf("log.theme must be gruvbox or everforest, got %q", c.Log.Theme)
	}

	return nil
}
