package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/sfcgen/cmd/sfcgen/commands"
	"github.com/teranos/sfcgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sfcgen",
	Short: "sfcgen - generate Vue single-file components from a visual editor registry",
	Long: `sfcgen - generate Vue single-file components from a visual editor registry.

Reads the component registry a visual editor hands over (JSON, YAML or TOML)
and composes the active component into a .vue file: template markup,
a script section with data, store bindings and child imports, and a
scoped style block.

Available commands:
  export  - Write the active component to disk
  preview - Print the generated file
  catalog - List the element kinds
  am      - Manage sfcgen configuration ("I am")
  version - Show version information

Examples:
  sfcgen export -r editor.json           # Prompt for a destination
  sfcgen preview -r editor.json -a Card  # Print a component
  sfcgen am show                         # Show current configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		logCfg := commands.LoggingConfig(cmd)
		logger.SetTheme(logCfg.Theme)

		if err := logger.Initialize(logCfg.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if verbosity > logger.VerbosityUser {
			logger.Logger.Infow("Logging enabled", "level", logger.LevelName(verbosity))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().String("config", "", "Config file to use instead of the user/project cascade")

	rootCmd.AddCommand(commands.ExportCmd)
	rootCmd.AddCommand(commands.PreviewCmd)
	rootCmd.AddCommand(commands.CatalogCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
