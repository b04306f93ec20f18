package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/lanes/internal/model"
)

// JSONStore keeps the list as one JSON array, the same shape the board
// exchanges on the wire.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: strings.TrimSpace(path)}
}

func (s *JSONStore) Path() string { return s.path }

// Load returns an empty list for a missing or blank file. A record that is
// not a valid task fails the whole load.
func (s *JSONStore) Load(context.Context) ([]model.Task, error) {
	out := make([]model.Task, 0)
	if s.path == "" {
		return out, nil
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	for i, task := range out {
		if err := task.Validate(); err != nil {
			return nil, fmt.Errorf("decode %s: record %d: %w", s.path, i, err)
		}
	}
	return out, nil
}

func (s *JSONStore) Save(_ context.Context, tasks []model.Task) error {
	if s.path == "" {
		return fmt.Errorf("storage: json store has no path")
	}
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *JSONStore) Close() error { return nil }
