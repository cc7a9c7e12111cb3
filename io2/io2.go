package io2

import (
	"os"
	"path/filepath"
)

func pathExistsCore(path string) (os.FileInfo, error) {
	if fileInfo, err := os.Stat(path); err == nil {
		return fileInfo, nil
	} else if os.IsNotExist(err) {
		return nil, nil
	} else {
		return nil, err
	}
}

// FileExists reports whether `file` resolves to a regular file.
// Symlinks are followed.
func FileExists(file string) bool {
	info, err := pathExistsCore(file)
	if err != nil {
		return false
	}
	return info != nil && info.Mode().IsRegular()
}

func DirectoryExists(dir string) bool {
	info, err := pathExistsCore(dir)
	if err != nil {
		return false
	}
	return info != nil && info.IsDir()
}

// EntryExists reports whether anything lives at `path`, including
// dangling symlinks.
func EntryExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func ResolvePath(path string) (string, error) {
	return filepath.Abs(path)
}

func Mkdirp(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// ReplaceSymlink points `link` at `target`, removing whatever was at `link`
// before. `target` is not required to exist.
func ReplaceSymlink(target, link string) error {
	if EntryExists(link) {
		if err := os.Remove(link); err != nil {
			return err
		}
	}
	return os.Symlink(target, link)
}
