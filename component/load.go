package component

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/teranos/sfcgen/errors"
)

// Snapshot file formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatFromPath picks the snapshot format from the file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithHint(
			errors.NewInvalidRequestError("unsupported registry file %q", path),
			"use a .json, .yaml, .yml or .toml file")
	}
}

// LoadFile reads a snapshot from fs, choosing the decoder by extension.
func LoadFile(fs afero.Fs, path string) (*Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WrapFilesystem(err, "failed to read registry file")
	}
	snap, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return snap, nil
}

// Decode parses snapshot data in the given format.
func Decode(data []byte, format string) (*Snapshot, error) {
	var snap Snapshot
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &snap)
	case FormatYAML:
		err = yaml.Unmarshal(data, &snap)
	case FormatTOML:
		_, err = toml.Decode(string(data), &snap)
	default:
		return nil, errors.NewInvalidRequestError("unknown snapshot format %q", format)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "malformed %s snapshot", format), errors.ErrInvalidRequest)
	}

	for name, node := range snap.ComponentMap {
		if node == nil {
			return nil, errors.NewInvalidRequestError("component %q has no definition", name)
		}
	}
	snap.normalize()
	return &snap, nil
}
