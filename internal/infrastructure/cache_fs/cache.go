package cache_fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/davarch/homework-watcher/internal/domain"
)

// FSCache writes the last confirmed delivery to a JSON file for
// status-bar consumers. Write-only: the file is never read back.
type FSCache struct {
	path string
}

func New(path string) *FSCache { return &FSCache{path: path} }

func (c *FSCache) Write(_ context.Context, s domain.Snapshot) error {
	if c.path == "" {
		return errors.New("cache path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(c.path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	type out struct {
		Homework  string `json:"homework"`
		Status    string `json:"status"`
		Message   string `json:"message"`
		Retrieved int64  `json:"retrieved"`
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(out{
		Homework:  s.Homework,
		Status:    s.Status,
		Message:   s.Message,
		Retrieved: s.Retrieved,
	})
}
