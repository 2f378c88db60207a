package infrastructure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage keeps uploaded files in a local directory. Files are never removed:
// a saved file stays on disk whether or not a resume record is produced.
type Storage struct {
	dir string
}

// NewStorage creates the upload directory if needed.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the upload directory path.
func (s *Storage) Dir() string {
	return s.dir
}

// Sanitize reduces a client-supplied file name to a safe basename: path
// components are stripped and anything outside [A-Za-z0-9._-] becomes '_'.
func (s *Storage) Sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		out = "upload"
	}
	return out
}

// Save writes the file under its sanitized name and returns the stored path.
func (s *Storage) Save(src io.Reader, name string) (string, error) {
	path := filepath.Join(s.dir, s.Sanitize(name))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

// Resolve maps a stored file name back to its path inside the upload dir,
// refusing anything that would escape it.
func (s *Storage) Resolve(name string) (string, error) {
	base := filepath.Base(name)
	if base == "." || base == ".." || base != name {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(s.dir, base), nil
}
