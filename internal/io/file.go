package ioutils

import (
	"os"
	"path/filepath"
)

// WriteFile writes data to path atomically.
//
// The data is written to a temporary file in the same directory, which is
// then renamed over path. A reader never sees a half-written file, and a
// failed write leaves any existing file untouched. The file ends up with
// mode perm.
//
// Example:
//
//	err := WriteFile("/home/me/.config/define/config.json", data, 0o600)
func WriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/me/.config/define")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether path exists. Errors other than "not exist" are
// returned so callers do not mistake a permission problem for a missing
// file.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
