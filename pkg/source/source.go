// Package source abstracts where file content is read from so that
// analysis code can run against the filesystem or in-memory trees.
package source

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ContentSource provides file content from a specific source.
type ContentSource interface {
	// Read returns the content of the file at path.
	Read(path string) ([]byte, error)
}

// FilesystemSource reads files from the local filesystem.
type FilesystemSource struct{}

// NewFilesystem creates a source that reads from the filesystem.
func NewFilesystem() *FilesystemSource {
	return &FilesystemSource{}
}

// Read implements ContentSource.
func (f *FilesystemSource) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// BillySource reads files from a billy filesystem. It backs tests with
// in-memory trees and keeps analysis code independent of the OS filesystem.
type BillySource struct {
	fs billy.Basic
}

// NewBilly creates a source backed by a billy filesystem.
func NewBilly(fs billy.Basic) *BillySource {
	return &BillySource{fs: fs}
}

// Read implements ContentSource.
func (b *BillySource) Read(path string) ([]byte, error) {
	return util.ReadFile(b.fs, path)
}
