package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/teranos/sfcgen/am"
	"github.com/teranos/sfcgen/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage sfcgen configuration",
	Long: `am - Manage sfcgen configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SFCGEN_* prefix, e.g. SFCGEN_EXPORT_TYPESCRIPT=on)
3. Project config (./sfcgen.toml, searched up from the working directory)
4. User config (~/.sfcgen/config.toml)
5. Default values

Examples:
  sfcgen am show                  # Show current configuration
  sfcgen am show --format json    # Show configuration in JSON format
  sfcgen am get export.extension  # Get specific config value
  sfcgen am validate              # Validate current configuration`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := settings(cmd)
		if err != nil {
			return err
		}
		return showSettings(cmd.OutOrStdout(), v, configFormat)
	},
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., export.typescript, log.theme)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := settings(cmd)
		if err != nil {
			return err
		}
		return getSetting(cmd.OutOrStdout(), v, args[0])
	},
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runAmValidate,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSources(cmd.OutOrStdout(), am.Sources())
	},
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func showSettings(w io.Writer, v *viper.Viper, format string) error {
	settings := v.AllSettings()

	switch format {
	case "json":
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(w, string(data))

	case "yaml":
		data, err := yaml.Marshal(settings)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(w, "# sfcgen configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(settings)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(w, "# sfcgen configuration\n%s", data)

	default:
		return errors.NewInvalidRequestError("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}

func getSetting(w io.Writer, v *viper.Viper, key string) error {
	if !v.IsSet(key) {
		return errors.NewNotFoundError("configuration key %q not found", key)
	}
	fmt.Fprintln(w, v.Get(key))
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	if err := am.CheckSources(); err != nil {
		return errors.Wrap(err, "configuration file is unreadable")
	}
	if _, err := loadConfig(cmd); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}

func printSources(w io.Writer, sources []am.Source) error {
	fmt.Fprintln(w, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(w, "  [DEFAULT]  Built-in defaults")
	for _, src := range sources {
		status := "missing"
		if src.Exists {
			status = "loaded"
		}
		fmt.Fprintf(w, "  [%-7s]  %s (%s)\n", strings.ToUpper(src.Kind), src.Path, status)
	}
	fmt.Fprintf(w, "  [ENV]      %s_* environment variables\n", am.EnvPrefix)
	return nil
}
