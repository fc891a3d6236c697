package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/sfcgen/am"
	"github.com/teranos/sfcgen/component"
	"github.com/teranos/sfcgen/errors"
	"github.com/teranos/sfcgen/sfc"
)

// fs is the filesystem every command reads and writes through.
var fs afero.Fs = afero.NewOsFs()

// settings returns the Viper for the root --config flag, or the cascade.
func settings(cmd *cobra.Command) (*viper.Viper, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return am.ViperFromFile(path)
	}
	return am.GetViper(), nil
}

// readConfig loads the file named by the root --config flag, or the cascade.
func readConfig(cmd *cobra.Command) (*am.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return am.LoadFromFile(path)
	}
	return am.Load()
}

// loadConfig reads and validates the active configuration.
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// LoggingConfig reports the log settings for the root command. Failures
// fall back to defaults so that `am validate` can still report them.
func LoggingConfig(cmd *cobra.Command) am.LogConfig {
	cfg, err := readConfig(cmd)
	if err != nil {
		return am.LogConfig{}
	}
	return cfg.Log
}

// jobFlags are the registry-selection flags shared by export and preview.
type jobFlags struct {
	registry   string
	active     string
	typescript string
}

func (f *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.registry, "registry", "r", "", "Registry snapshot file (.json, .yaml, .yml, .toml)")
	cmd.Flags().StringVarP(&f.active, "active", "a", "", "Component to export (defaults to the snapshot's activeComponent)")
	cmd.Flags().StringVar(&f.typescript, "typescript", "", `Typed variant toggle: "on" enables it (defaults to the snapshot, then export.typescript)`)
	_ = cmd.MarkFlagRequired("registry")
}

// resolveActive picks the component named on the command line, else the snapshot's.
func resolveActive(flag string, snap *component.Snapshot) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if snap.ActiveComponent != "" {
		return snap.ActiveComponent, nil
	}
	return "", errors.WithHint(
		errors.NewInvalidRequestError("no active component"),
		"pass --active or set activeComponent in the registry file",
	)
}

// resolveOptions layers the typescript toggle: flag, then snapshot, then config.
func resolveOptions(cfg *am.Config, flag string, snap *component.Snapshot) sfc.Options {
	opts := cfg.GeneratorOptions()
	switch {
	case flag != "":
		opts.Typescript = sfc.TypescriptEnabled(flag)
	case snap.ExportAsTypescript != "":
		opts.Typescript = sfc.TypescriptEnabled(snap.ExportAsTypescript)
	}
	return opts
}
