package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/kozaktomas/color-season/internal/config"
)

// DefaultLocalURLPrefix is where the web server exposes the local store.
const DefaultLocalURLPrefix = "/uploads"

// ErrNotFound is returned by Open for keys that do not name a stored object.
var ErrNotFound = errors.New("object not found")

// LocalStore writes uploads into a directory on disk.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the directory if needed. An empty baseURL serves
// objects under /uploads on the same host.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	if baseURL == "" {
		baseURL = DefaultLocalURLPrefix
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Name implements Store.
func (s *LocalStore) Name() string {
	return config.BackendLocal
}

// Put writes the content to a temporary file and renames it into place, so a
// failed upload never leaves a partial object behind.
func (s *LocalStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (Object, error) {
	if err := validateKey(key); err != nil {
		return Object{}, err
	}
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return Object{}, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return Object{}, fmt.Errorf("writing upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Object{}, fmt.Errorf("closing upload: %w", err)
	}
	if size >= 0 && written != size {
		return Object{}, fmt.Errorf("short upload: wrote %d of %d bytes", written, size)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, key)); err != nil {
		return Object{}, fmt.Errorf("storing upload: %w", err)
	}

	return Object{
		Key:         key,
		URL:         s.URL(key),
		ContentType: contentType,
		Size:        written,
	}, nil
}

// URL implements Store.
func (s *LocalStore) URL(key string) string {
	return s.baseURL + "/" + url.PathEscape(key)
}

// Open returns a stored object for reading. Directories and dot-files,
// including in-flight ".upload-*" temp files, are reported as ErrNotFound.
func (s *LocalStore) Open(key string) (*os.File, fs.FileInfo, error) {
	if validateKey(key) != nil || strings.HasPrefix(key, ".") {
		return nil, nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	f, err := os.Open(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return f, info, nil
}
