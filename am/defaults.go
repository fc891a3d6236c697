package am

import (
	"github.com/spf13/viper"

	"github.com/teranos/sfcgen/sfc"
)

// Prompt texts shown when asking where to export
const (
	DefaultDialogTitle     = "Choose location to save folder in"
	DefaultDialogMessage   = "Choose location to save folder in"
	DefaultNameFieldLabel  = "Component Name"
	DefaultTypescriptValue = "off"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Export defaults
	v.SetDefault("export.typescript", DefaultTypescriptValue)
	v.SetDefault("export.extension", sfc.DefaultExtension)
	v.SetDefault("export.component_dir", sfc.DefaultComponentDir)
	v.SetDefault("export.atomic_write", true)
	v.SetDefault("export.strict_refs", false)

	v.SetDefault("export.dialog.title", DefaultDialogTitle)
	v.SetDefault("export.dialog.message", DefaultDialogMessage)
	v.SetDefault("export.dialog.name_field_label", DefaultNameFieldLabel)

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", "gruvbox")
}
