package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/sfcgen/errors"
)

// Config file locations
const (
	ProjectConfigName = "sfcgen.toml"
	UserConfigDir     = ".sfcgen"
	UserConfigName    = "config.toml"
	EnvPrefix         = "SFCGEN"
)

// Load reads the sfcgen configuration from the full cascade
func Load() (*Config, error) {
	return LoadWithViper(GetViper())
}

// GetViper returns a Viper holding defaults, merged config files and env
// bindings. Each call re-reads the cascade.
func GetViper() *viper.Viper {
	v := newViper()
	mergeConfigFiles(v, Sources())
	return v
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path on top of defaults
func LoadFromFile(configPath string) (*Config, error) {
	v, err := ViperFromFile(configPath)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// ViperFromFile returns a Viper holding the defaults overlaid with one file,
// bypassing the user/project cascade. Environment variables still apply.
func ViperFromFile(configPath string) (*viper.Viper, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return v, nil
}

// newViper returns a Viper with defaults and SFCGEN_* env binding
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Source is one file in the configuration cascade
type Source struct {
	Kind   string // "user" or "project"
	Path   string
	Exists bool
}

// Sources lists the config files consulted, lowest precedence first
func Sources() []Source {
	var sources []Source

	if home, err := os.UserHomeDir(); err == nil {
		sources = append(sources, newSource("user", filepath.Join(home, UserConfigDir, UserConfigName)))
	}

	if cwd, err := os.Getwd(); err == nil {
		if project := findProjectConfig(cwd); project != "" {
			sources = append(sources, newSource("project", project))
		} else {
			sources = append(sources, newSource("project", filepath.Join(cwd, ProjectConfigName)))
		}
	}
	return sources
}

func newSource(kind, path string) Source {
	_, err := os.Stat(path)
	return Source{Kind: kind, Path: path, Exists: err == nil}
}

// findProjectConfig searches for sfcgen.toml walking up from dir.
// Returns the first path found, or empty string if none.
func findProjectConfig(dir string) string {
	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// mergeConfigFiles merges existing sources in order, later ones winning.
// Environment variables still take precedence over everything merged here.
func mergeConfigFiles(v *viper.Viper, sources []Source) {
	for _, src := range sources {
		if !src.Exists {
			continue
		}
		v.SetConfigFile(src.Path)
		v.SetConfigType("toml")
		// A broken file is skipped; `sfcgen am validate` reports it
		_ = v.MergeInConfig()
	}
}

// CheckSources parses every existing config file and reports the first failure
func CheckSources() error {
	for _, src := range Sources() {
		if !src.Exists {
			continue
		}
		v := viper.New()
		v.SetConfigFile(src.Path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "%s config %s is invalid", src.Kind, src.Path)
		}
	}
	return nil
}
