package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/util/ioutils"
)

// IsFileExists checks if file specified exists
func IsFileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether name exists and is a directory.
func IsDir(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && fi.IsDir()
}

// CreateFileIfNotExists creates file specified if not exists
func CreateFileIfNotExists(name string) error {
	_, err := os.Stat(name)
	if os.IsNotExist(err) {
		return CreateRecursively(name)
	}
	return err
}

// CreateRecursively creates file and all its missing parent directories.
func CreateRecursively(name string) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	return f.Close()
}

// WriteFile writes everything read from r into filePath, truncating it first.
// It returns the number of bytes written.
func WriteFile(filePath string, r io.Reader) (int64, error) {
	file, err := os.Create(filePath)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create file %s", filePath)
	}
	n, err := io.Copy(file, r)
	if err != nil {
		ioutils.QuiteClose(file)
		return n, errors.Wrapf(err, "failed to write content to file %s", filePath)
	}
	if err = file.Close(); err != nil {
		return n, errors.Wrapf(err, "failed to close file %s", filePath)
	}
	return n, nil
}

// CopyFile copies src to dst, replacing dst if it already exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %s", src)
	}
	defer ioutils.QuiteClose(in)

	_, err = WriteFile(dst, in)
	return err
}

// MoveFile moves src to dst, replacing dst if it already exists.
// A plain rename is tried first; when src and dst live on different
// file systems the content is copied and src removed afterwards.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := CopyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove %s", src)
	}
	return nil
}
