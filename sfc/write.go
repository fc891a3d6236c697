package sfc

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/teranos/sfcgen/errors"
)

// FilePath returns where a component file lands: <dir>/<name>.<ext>.
func FilePath(dir, name, ext string) string {
	return filepath.Join(dir, name+"."+ext)
}

// WriteFile writes text to <dir>/<name>.<ext>, replacing any existing file.
//
// With atomic set, text goes to a uniquely named hidden file in dir first and
// is renamed over the target, so readers never see a partial file. The
// directory must already exist.
func WriteFile(fs afero.Fs, dir, name, ext, text string, atomic bool) (string, error) {
	target := FilePath(dir, name, ext)

	if !atomic {
		if err := afero.WriteFile(fs, target, []byte(text), 0o644); err != nil {
			return "", errors.WrapFilesystem(err, "failed to write component file")
		}
		return target, nil
	}

	tmp := filepath.Join(dir, "."+name+"."+ext+"."+uuid.NewString()+".tmp")
	if err := afero.WriteFile(fs, tmp, []byte(text), 0o644); err != nil {
		_ = fs.Remove(tmp)
		return "", errors.WrapFilesystem(err, "failed to write temporary component file")
	}
	if err := fs.Rename(tmp, target); err != nil {
		_ = fs.Remove(tmp)
		return "", errors.WrapFilesystem(err, "failed to move component file into place")
	}
	return target, nil
}

// EnsureDir creates dir and its parents if missing. Existing directories are fine.
func EnsureDir(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.WrapFilesystem(
				errors.Newf("%s exists and is not a directory", dir), "failed to prepare destination")
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.WrapFilesystem(err, "failed to inspect destination")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapFilesystem(err, "failed to create destination directory")
	}
	return nil
}
