// Package storage stores uploaded learning-material files and hands back
// stable paths for the database to reference.
package storage

import "io"

// FileStorage is what the material handlers consume. Save returns a stable
// path for later Open/Remove calls.
type FileStorage interface {
	Save(filename string, r io.Reader) (path string, err error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}
