package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "off", cfg.Export.Typescript)
	assert.Equal(t, "vue", cfg.Export.Extension)
	assert.Equal(t, "@/components", cfg.Export.ComponentDir)
	assert.True(t, cfg.Export.AtomicWrite)
	assert.False(t, cfg.Export.StrictRefs)
	assert.Equal(t, DefaultNameFieldLabel, cfg.Export.Dialog.NameFieldLabel)
	assert.NoError(t, cfg.Validate())

	opts := cfg.GeneratorOptions()
	assert.False(t, opts.Typescript)
	assert.Equal(t, "vue", opts.Extension)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	require.NoError(t, os.WriteFile(path, []byte(`
[export]
typescript = "on"
extension = "tsx"
strict_refs = true

[export.dialog]
title = "Where to?"
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "tsx", cfg.Export.Extension)
	assert.Equal(t, "Where to?", cfg.Export.Dialog.Title)
	assert.Equal(t, DefaultDialogMessage, cfg.Export.Dialog.Message, "unset keys keep defaults")

	opts := cfg.GeneratorOptions()
	assert.True(t, opts.Typescript)
	assert.True(t, opts.StrictRefs)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestTypescriptOnlyForExactOn(t *testing.T) {
	for value, want := range map[string]bool{"on": true, "off": false, "ON": false, "yes": false, "": false} {
		cfg := &Config{Export: ExportConfig{Typescript: value}}
		assert.Equal(t, want, cfg.GeneratorOptions().Typescript, "typescript=%q", value)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Export: ExportConfig{Extension: "vue", ComponentDir: "@/components"}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty extension", mutate: func(c *Config) { c.Export.Extension = "" }, wantErr: "export.extension cannot be empty"},
		{name: "dotted extension", mutate: func(c *Config) { c.Export.Extension = ".vue" }, wantErr: "bare extension"},
		{name: "path in extension", mutate: func(c *Config) { c.Export.Extension = "a/b" }, wantErr: "bare extension"},
		{name: "empty component dir", mutate: func(c *Config) { c.Export.ComponentDir = " " }, wantErr: "component_dir"},
		{name: "unknown theme", mutate: func(c *Config) { c.Log.Theme = "solarized" }, wantErr: "log.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindProjectConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ProjectConfigName), []byte("[export]\n"), 0o644))

	assert.Equal(t, filepath.Join(root, ProjectConfigName), findProjectConfig(nested))
}

func TestMergeConfigFilesPrecedence(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	project := filepath.Join(dir, "project.toml")
	require.NoError(t, os.WriteFile(user, []byte("[export]\nextension = \"user\"\ncomponent_dir = \"~/c\"\n"), 0o644))
	require.NoError(t, os.WriteFile(project, []byte("[export]\nextension = \"project\"\n"), 0o644))

	v := viper.New()
	SetDefaults(v)
	mergeConfigFiles(v, []Source{
		{Kind: "user", Path: user, Exists: true},
		{Kind: "project", Path: project, Exists: true},
		{Kind: "project", Path: filepath.Join(dir, "missing.toml"), Exists: false},
	})

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, "project", cfg.Export.Extension)
	assert.Equal(t, "~/c", cfg.Export.ComponentDir)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("SFCGEN_EXPORT_TYPESCRIPT", "on")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "on", cfg.Export.Typescript)
}

func TestLoadRereadsProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "vue", cfg.Export.Extension)

	path := filepath.Join(dir, ProjectConfigName)
	require.NoError(t, os.WriteFile(path, []byte("[export]\nextension = \"tsx\"\n"), 0o644))

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "tsx", cfg.Export.Extension)
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
