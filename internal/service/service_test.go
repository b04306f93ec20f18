package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/storage"
)

type failingStore struct {
	tasks   []model.Task
	loadErr error
	saveErr error
}

func (f *failingStore) Load(context.Context) ([]model.Task, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]model.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *failingStore) Save(_ context.Context, tasks []model.Task) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.tasks = append([]model.Task(nil), tasks...)
	return nil
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestService(seed ...model.Task) (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore(seed)
	return New(store, WithIDGenerator(sequentialIDs())), store
}

func seedABC() []model.Task {
	return []model.Task{
		{ID: "a", Title: "A", Status: model.StatusTodo},
		{ID: "b", Title: "B", Status: model.StatusDoing},
		{ID: "c", Title: "C", Status: model.StatusDone},
	}
}

func TestAddTaskTrimsTitleAndAppends(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()

	task, err := svc.AddTask(ctx, NewTask{Title: "  write docs  ", Due: "2026-02-09", Status: model.StatusDoing})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if task.Title != "write docs" || task.ID != "id-1" || task.Due != "2026-02-09" {
		t.Fatalf("unexpected task: %#v", task)
	}
	tasks := svc.GetTasks(ctx)
	if len(tasks) != 4 || tasks[3] != task {
		t.Fatalf("expected new task appended at the end, got %#v", tasks)
	}
}

func TestAddTaskDefaultsToTodo(t *testing.T) {
	svc, _ := newTestService()
	task, err := svc.AddTask(context.Background(), NewTask{Title: "x"})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if task.Status != model.StatusTodo {
		t.Fatalf("expected todo default, got %q", task.Status)
	}
}

func TestAddTaskRejectsBlankTitle(t *testing.T) {
	svc, store := newTestService()
	_, err := svc.AddTask(context.Background(), NewTask{Title: "   ", Status: model.StatusTodo})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if store.Saves() != 0 {
		t.Fatalf("expected no save on validation failure, got %d", store.Saves())
	}
}

func TestAddTaskRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.AddTask(context.Background(), NewTask{Title: "x", Status: model.Status("later")})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGetTaskByID(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()
	if task, ok := svc.GetTaskByID(ctx, "b"); !ok || task.Title != "B" {
		t.Fatalf("unexpected lookup result: %#v %v", task, ok)
	}
	if _, ok := svc.GetTaskByID(ctx, "zz"); ok {
		t.Fatal("expected missing task")
	}
	if _, err := svc.MustGetTask(ctx, "zz"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetTasksIsIdempotent(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()
	first := svc.GetTasks(ctx)
	second := svc.GetTasks(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected equal snapshots: %#v vs %#v", first, second)
	}
}

func TestGetTasksDegradesOnLoadFailure(t *testing.T) {
	svc := New(&failingStore{loadErr: errors.New("corrupt")})
	tasks := svc.GetTasks(context.Background())
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", tasks)
	}
}

func TestUpdateTaskMergesAndPreservesPosition(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()
	title := "  Bee  "
	due := ""
	if err := svc.UpdateTask(ctx, "b", TaskUpdate{Title: &title, Due: &due}); err != nil {
		t.Fatalf("update: %v", err)
	}
	tasks := svc.GetTasks(ctx)
	if tasks[1].ID != "b" || tasks[1].Title != "Bee" || tasks[1].Status != model.StatusDoing {
		t.Fatalf("unexpected updated task: %#v", tasks[1])
	}
}

func TestUpdateTaskPassesEmptyDueThrough(t *testing.T) {
	svc, _ := newTestService(model.Task{ID: "a", Title: "A", Due: "2026-01-01", Status: model.StatusTodo})
	ctx := context.Background()
	due := ""
	if err := svc.UpdateTask(ctx, "a", TaskUpdate{Due: &due}); err != nil {
		t.Fatalf("update: %v", err)
	}
	task, _ := svc.GetTaskByID(ctx, "a")
	if task.Due != "" {
		t.Fatalf("expected due cleared, got %q", task.Due)
	}
}

func TestUpdateTaskErrors(t *testing.T) {
	svc, store := newTestService(seedABC()...)
	ctx := context.Background()
	title := "x"
	if err := svc.UpdateTask(ctx, "zz", TaskUpdate{Title: &title}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	blank := "  "
	if err := svc.UpdateTask(ctx, "a", TaskUpdate{Title: &blank}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if store.Saves() != 0 {
		t.Fatalf("expected no saves, got %d", store.Saves())
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()
	if err := svc.UpdateTaskStatus(ctx, "a", model.StatusDone); err != nil {
		t.Fatalf("update status: %v", err)
	}
	tasks := svc.GetTasks(ctx)
	if tasks[0].ID != "a" || tasks[0].Status != model.StatusDone || tasks[0].Title != "A" {
		t.Fatalf("unexpected task after status change: %#v", tasks[0])
	}
}

func TestUpdateTaskStatusUnknownIDLeavesStoreUntouched(t *testing.T) {
	svc, store := newTestService(seedABC()...)
	ctx := context.Background()
	before := svc.GetTasks(ctx)
	err := svc.UpdateTaskStatus(ctx, "zz", model.StatusDone)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.Saves() != 0 {
		t.Fatalf("expected no save, got %d", store.Saves())
	}
	if after := svc.GetTasks(ctx); !reflect.DeepEqual(before, after) {
		t.Fatalf("store changed: %#v", after)
	}
}

func TestDeleteThenUndoRestoresOriginalPosition(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()
	before := svc.GetTasks(ctx)

	if err := svc.DeleteTask(ctx, "b", true); err != nil {
		t.Fatalf("delete: %v", err)
	}
	entry, ok := svc.UndoEntry()
	if !ok || entry.Task.ID != "b" || entry.Index != 1 {
		t.Fatalf("unexpected undo entry: %#v %v", entry, ok)
	}
	if tasks := svc.GetTasks(ctx); len(tasks) != 2 || tasks[0].ID != "a" || tasks[1].ID != "c" {
		t.Fatalf("unexpected tasks after delete: %#v", tasks)
	}

	if err := svc.UndoDelete(ctx); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if after := svc.GetTasks(ctx); !reflect.DeepEqual(before, after) {
		t.Fatalf("undo did not restore list:\n got %#v\nwant %#v", after, before)
	}
	if svc.HasUndoDelete() {
		t.Fatal("expected undo slot cleared after undo")
	}
}

func TestUndoWithoutDeleteFails(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	if err := svc.UndoDelete(context.Background()); !errors.Is(err, model.ErrNoUndoAvailable) {
		t.Fatalf("expected ErrNoUndoAvailable, got %v", err)
	}
}

func TestSecondDeleteOverwritesUndoSlot(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()
	if err := svc.DeleteTask(ctx, "a", true); err != nil {
		t.Fatalf("delete a: %v", err)
	}
	if err := svc.DeleteTask(ctx, "c", true); err != nil {
		t.Fatalf("delete c: %v", err)
	}
	if err := svc.UndoDelete(ctx); err != nil {
		t.Fatalf("undo: %v", err)
	}
	tasks := svc.GetTasks(ctx)
	if len(tasks) != 2 || tasks[0].ID != "b" || tasks[1].ID != "c" {
		t.Fatalf("expected only c restored, got %#v", tasks)
	}
	if err := svc.UndoDelete(ctx); !errors.Is(err, model.ErrNoUndoAvailable) {
		t.Fatalf("expected second undo to fail, got %v", err)
	}
}

func TestDeleteWithoutUndoKeepsPriorSlot(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()
	if err := svc.DeleteTask(ctx, "a", true); err != nil {
		t.Fatalf("delete a: %v", err)
	}
	if err := svc.DeleteTask(ctx, "b", false); err != nil {
		t.Fatalf("delete b: %v", err)
	}
	entry, ok := svc.UndoEntry()
	if !ok || entry.Task.ID != "a" {
		t.Fatalf("expected slot to still hold a, got %#v %v", entry, ok)
	}
}

func TestUndoClampsToShrunkList(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	ctx := context.Background()
	if err := svc.DeleteTask(ctx, "c", true); err != nil {
		t.Fatalf("delete c: %v", err)
	}
	if err := svc.DeleteTask(ctx, "b", false); err != nil {
		t.Fatalf("delete b: %v", err)
	}
	if err := svc.UndoDelete(ctx); err != nil {
		t.Fatalf("undo: %v", err)
	}
	tasks := svc.GetTasks(ctx)
	if len(tasks) != 2 || tasks[1].ID != "c" {
		t.Fatalf("expected c clamped to end, got %#v", tasks)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _ := newTestService(seedABC()...)
	if err := svc.DeleteTask(context.Background(), "zz", true); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if svc.HasUndoDelete() {
		t.Fatal("expected no undo slot after failed delete")
	}
}

func TestSaveFailureLeavesUndoSlotUntouched(t *testing.T) {
	store := &failingStore{tasks: seedABC()}
	svc := New(store)
	ctx := context.Background()
	store.saveErr = errors.New("disk full")
	err := svc.DeleteTask(ctx, "a", true)
	if err == nil || !errors.Is(err, store.saveErr) {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
	if svc.HasUndoDelete() {
		t.Fatal("expected undo slot untouched after failed save")
	}
}

func TestDefaultIDsAreUnique(t *testing.T) {
	svc := New(nil)
	ctx := context.Background()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		task, err := svc.AddTask(ctx, NewTask{Title: "t"})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %q", task.ID)
		}
		seen[task.ID] = true
	}
}
