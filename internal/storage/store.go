package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/lanes/internal/model"
)

// Store persists the whole task list. Save always overwrites the full set.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendJSON   Backend = "json"
	BackendMemory Backend = "memory"
)

var ErrUnknownBackend = errors.New("storage: unknown backend")

func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendJSON, BackendMemory:
		return true
	default:
		return false
	}
}

// CloseableStore is returned by Open; Close releases the backing resource.
type CloseableStore interface {
	Store
	Close() error
}

func Open(backend Backend, path string) (CloseableStore, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendJSON:
		return NewJSONStore(path), nil
	case BackendMemory:
		return NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func cloneTasks(in []model.Task) []model.Task {
	out := make([]model.Task, len(in))
	copy(out, in)
	return out
}
