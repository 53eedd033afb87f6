package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions mirrors the upload form: documents and images only.
var allowedExtensions = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".ppt": {}, ".pptx": {},
	".txt": {}, ".jpg": {}, ".png": {},
}

var ErrExtensionNotAllowed = errors.New("file type not allowed")

// Local stores files on disk under a base directory, prefixing each stored
// name with a uuid so client filenames can never collide or traverse.
type Local struct {
	baseDir string
}

func NewLocal(baseDir string) (*Local, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &Local{baseDir: baseDir}, nil
}

func (l *Local) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrExtensionNotAllowed
	}
	name := uuid.NewString() + ext
	full := filepath.Join(l.baseDir, name)

	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", err
	}
	return name, nil
}

func (l *Local) Open(path string) (io.ReadCloser, error) {
	// path is the name Save returned; never trust it as a relative path
	return os.Open(filepath.Join(l.baseDir, filepath.Base(path)))
}

func (l *Local) Remove(path string) error {
	return os.Remove(filepath.Join(l.baseDir, filepath.Base(path)))
}
