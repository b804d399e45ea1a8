package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File persists each key as a JSON file under a base directory. Writes go
// through a temp file and rename so a crashed write never leaves a
// half-written document behind.
type File struct {
	baseDir string
}

// NewFile ensures the base directory exists and returns a handle.
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

// Get reads the value stored for key. A missing file is absence, not an
// error.
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(f.resolve(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read document file: %w", err)
	}
	return string(data), true, nil
}

// Set replaces the value stored for key.
func (f *File) Set(_ context.Context, key, value string) error {
	path := f.resolve(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write document file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace document file: %w", err)
	}
	return nil
}

func (f *File) resolve(key string) string {
	// Keys like "scienceIdealHome.v1" become plain file names.
	name := strings.ReplaceAll(key, string(filepath.Separator), "_")
	return filepath.Join(f.baseDir, name+".json")
}
