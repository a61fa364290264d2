package cache_fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/davarch/homework-watcher/internal/domain"
)

func TestCache_WriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	c := New(path)
	s := domain.Snapshot{
		Homework:  "hw1",
		Status:    "approved",
		Message:   "msg",
		Retrieved: 123,
	}
	if err := c.Write(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("file is not JSON: %v", err)
	}
	if got["homework"] != "hw1" || got["status"] != "approved" {
		t.Errorf("unexpected contents: %v", got)
	}
}

func TestCache_EmptyPathIsError(t *testing.T) {
	c := New("")
	if err := c.Write(context.Background(), domain.Snapshot{}); err == nil {
		t.Error("expected error for empty path")
	}
}
