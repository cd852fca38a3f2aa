package fsys

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// FileSystem is the filesystem collaborator used for existence probes and reads.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// ContentReader is a function that reads file content given a file path.
type ContentReader func(filePath string) ([]byte, error)

// OS reads from the local disk.
type OS struct{}

func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Reader returns a ContentReader backed by fsys.
func Reader(fsys FileSystem) ContentReader {
	return fsys.ReadFile
}

// EntryKind describes what, if anything, exists at a path.
type EntryKind int

const (
	Missing EntryKind = iota
	File
	Dir
)

// Probe reports what exists at path. A missing path is not an error; any other
// stat failure (permission denied, I/O error) is returned unchanged so callers
// never mistake an unreadable file for an absent one.
func Probe(fsys FileSystem, path string) (EntryKind, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if IsNotExist(err) {
			return Missing, nil
		}
		return Missing, err
	}
	if info.IsDir() {
		return Dir, nil
	}
	return File, nil
}

// IsNotExist reports whether err means the path does not exist. A path that
// walks through a regular file (ENOTDIR) counts as missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
