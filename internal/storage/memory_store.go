package storage

import (
	"context"

	"github.com/sandeepkv93/lanes/internal/model"
)

// MemoryStore keeps the list in process. Load and Save copy, so callers never
// share a backing array with the store.
type MemoryStore struct {
	tasks []model.Task
	saves int
}

func NewMemoryStore(seed []model.Task) *MemoryStore {
	return &MemoryStore{tasks: cloneTasks(seed)}
}

func (s *MemoryStore) Load(context.Context) ([]model.Task, error) {
	return cloneTasks(s.tasks), nil
}

func (s *MemoryStore) Save(_ context.Context, tasks []model.Task) error {
	s.tasks = cloneTasks(tasks)
	s.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (s *MemoryStore) Saves() int { return s.saves }

func (s *MemoryStore) Close() error { return nil }
