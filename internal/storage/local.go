package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeCharRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LocalStore keeps uploaded files on the local filesystem under a single
// directory, one file per upload, keyed by a generated name.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("empty storage dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the content to a new file and returns its storage path. The
// original filename only contributes a sanitized suffix; the name is always
// prefixed with a fresh UUID so uploads never collide.
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitize(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func (s *LocalStore) Open(path string) (io.ReadCloser, error) {
	if !s.contains(path) {
		return nil, fmt.Errorf("path outside storage dir: %s", path)
	}
	return os.Open(path)
}

func (s *LocalStore) Remove(path string) error {
	if !s.contains(path) {
		return fmt.Errorf("path outside storage dir: %s", path)
	}
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStore) contains(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(s.dir)
	if err != nil {
		return false
	}
	return strings.HasPrefix(abs, absDir+string(filepath.Separator))
}

func sanitize(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	base = unsafeCharRe.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		return "upload"
	}
	return base
}
