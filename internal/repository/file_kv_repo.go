package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/natefinch/atomic"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileKVRepo stores each key as a file under a directory.
// Writes go through a temp file and rename, so a crash never leaves half a value.
type FileKVRepo struct {
	dir string
}

// NewFileKVRepo creates a FileKVRepo rooted at dir
func NewFileKVRepo(dir string) *FileKVRepo {
	return &FileKVRepo{dir: dir}
}

func (r *FileKVRepo) path(key string) string {
	return filepath.Join(r.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

// Get retrieves the value stored under key
func (r *FileKVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(r.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	return string(data), true, nil
}

// Set stores value under key
func (r *FileKVRepo) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	if err := atomic.WriteFile(r.path(key), strings.NewReader(value)); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *FileKVRepo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(r.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}

	return nil
}
