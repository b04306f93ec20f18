// Package service owns task CRUD semantics and the single-slot undo buffer.
// It reads the store on every call; the store is the source of truth.
package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/storage"
)

// NewTask is the input to AddTask. An empty Status defaults to todo.
type NewTask struct {
	Title  string
	Due    string
	Status model.Status
}

// TaskUpdate is a partial merge; nil fields are left as they are.
type TaskUpdate struct {
	Title  *string
	Due    *string
	Status *model.Status
}

// UndoEntry is the last recorded deletion and its pre-removal index.
type UndoEntry struct {
	Task  model.Task `json:"task"`
	Index int        `json:"index"`
}

type Service struct {
	store  storage.Store
	newID  func() string
	logger *log.Logger
	undo   *UndoEntry
}

type Option func(*Service)

func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(store storage.Store, opts ...Option) *Service {
	if store == nil {
		store = storage.NewMemoryStore(nil)
	}
	s := &Service{
		store:  store,
		newID:  newTimeOrderedID,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newTimeOrderedID returns a UUIDv7, which sorts by creation time.
func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// GetTasks never fails: an unreadable store degrades to an empty board.
func (s *Service) GetTasks(ctx context.Context) []model.Task {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("task store load failed; using empty list", "err", err)
		return []model.Task{}
	}
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}

func (s *Service) AddTask(ctx context.Context, in NewTask) (model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: task title is required", model.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = model.StatusTodo
	}
	if !status.IsValid() {
		return model.Task{}, fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}

	tasks := s.GetTasks(ctx)
	task := model.Task{
		ID:     s.newID(),
		Title:  title,
		Due:    in.Due,
		Status: status,
	}
	tasks = append(tasks, task)
	if err := s.save(ctx, tasks); err != nil {
		return model.Task{}, err
	}
	s.logger.Info("task added", "task_id", task.ID, "status", task.Status)
	return task, nil
}

func (s *Service) GetTaskByID(ctx context.Context, id string) (model.Task, bool) {
	tasks := s.GetTasks(ctx)
	idx := model.IndexOf(tasks, id)
	if idx < 0 {
		return model.Task{}, false
	}
	return tasks[idx], true
}

// MustGetTask fails with model.ErrNotFound when id is absent.
func (s *Service) MustGetTask(ctx context.Context, id string) (model.Task, error) {
	task, ok := s.GetTaskByID(ctx, id)
	if !ok {
		return model.Task{}, notFound(id)
	}
	return task, nil
}

func (s *Service) UpdateTask(ctx context.Context, id string, updates TaskUpdate) error {
	tasks := s.GetTasks(ctx)
	idx := model.IndexOf(tasks, id)
	if idx < 0 {
		return notFound(id)
	}

	next := tasks[idx]
	if updates.Title != nil {
		next.Title = strings.TrimSpace(*updates.Title)
		if next.Title == "" {
			return fmt.Errorf("%w: task title is required", model.ErrValidation)
		}
	}
	if updates.Due != nil {
		next.Due = *updates.Due
	}
	if updates.Status != nil {
		if !updates.Status.IsValid() {
			return fmt.Errorf("%w: %q", model.ErrInvalidStatus, *updates.Status)
		}
		next.Status = *updates.Status
	}

	tasks[idx] = next
	if err := s.save(ctx, tasks); err != nil {
		return err
	}
	s.logger.Info("task updated", "task_id", id, "status", next.Status)
	return nil
}

func (s *Service) UpdateTaskStatus(ctx context.Context, id string, status model.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}
	tasks := s.GetTasks(ctx)
	idx := model.IndexOf(tasks, id)
	if idx < 0 {
		return notFound(id)
	}
	tasks[idx].Status = status
	if err := s.save(ctx, tasks); err != nil {
		return err
	}
	s.logger.Info("task status changed", "task_id", id, "status", status)
	return nil
}

// DeleteTask removes id. With recordUndo the undo slot is overwritten;
// without it any earlier slot is left intact.
func (s *Service) DeleteTask(ctx context.Context, id string, recordUndo bool) error {
	tasks := s.GetTasks(ctx)
	idx := model.IndexOf(tasks, id)
	if idx < 0 {
		return notFound(id)
	}
	removed := tasks[idx]
	remaining := make([]model.Task, 0, len(tasks)-1)
	remaining = append(remaining, tasks[:idx]...)
	remaining = append(remaining, tasks[idx+1:]...)

	if err := s.save(ctx, remaining); err != nil {
		return err
	}
	if recordUndo {
		s.undo = &UndoEntry{Task: removed, Index: idx}
	}
	s.logger.Info("task deleted", "task_id", id, "index", idx, "undo", recordUndo)
	return nil
}

func (s *Service) HasUndoDelete() bool {
	return s.undo != nil
}

func (s *Service) UndoEntry() (UndoEntry, bool) {
	if s.undo == nil {
		return UndoEntry{}, false
	}
	return *s.undo, true
}

// UndoDelete reinserts the buffered task, clamped to the end of a list that
// has shrunk since the deletion.
func (s *Service) UndoDelete(ctx context.Context) error {
	if s.undo == nil {
		return model.ErrNoUndoAvailable
	}
	entry := *s.undo
	tasks := s.GetTasks(ctx)
	at := min(entry.Index, len(tasks))
	restored := make([]model.Task, 0, len(tasks)+1)
	restored = append(restored, tasks[:at]...)
	restored = append(restored, entry.Task)
	restored = append(restored, tasks[at:]...)

	if err := s.save(ctx, restored); err != nil {
		return err
	}
	s.undo = nil
	s.logger.Info("task restored", "task_id", entry.Task.ID, "index", at)
	return nil
}

func (s *Service) save(ctx context.Context, tasks []model.Task) error {
	if err := s.store.Save(ctx, tasks); err != nil {
		s.logger.Error("task store save failed", "err", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", model.ErrNotFound, id)
}
