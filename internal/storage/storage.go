// Package storage keeps uploaded photos in a bucket and hands out public URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/kozaktomas/color-season/internal/config"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidKey is returned for object keys that would escape the bucket.
var ErrInvalidKey = errors.New("invalid object key")

// Object describes a stored upload.
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Store is a bucket photos are uploaded to.
type Store interface {
	// Put stores the content under key. size is -1 when unknown.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (Object, error)
	// URL returns the public URL of key.
	URL(key string) string
	// Name identifies the backend ("local" or "s3").
	Name() string
}

// New creates the store selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.BackendS3:
		return NewS3Store(ctx, cfg)
	default:
		return NewLocalStore(cfg.LocalDir, cfg.PublicURL)
	}
}

// ObjectKey builds the name an upload is stored under: the upload time in
// Unix milliseconds, a dash, and the sanitized file name.
func ObjectKey(now time.Time, filename string) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + SanitizeName(filename)
}

// SanitizeName reduces a client-supplied file name to [A-Za-z0-9._-]. Accents
// are folded ("Zoë" becomes "Zoe") and spaces become dashes. A name with
// nothing left is replaced by a random UUID.
func SanitizeName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" {
		name = ""
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, name); err == nil {
		name = folded
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	out := strings.Trim(b.String(), ".-")
	if out == "" {
		return uuid.New().String()
	}
	return out
}

func validateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
