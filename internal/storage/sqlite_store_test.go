package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sandeepkv93/lanes/internal/model"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "lanes-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSQLiteStoreEmptyLoad(t *testing.T) {
	store := setupSQLiteStore(t)
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestSQLiteStoreSavePreservesOrderAndFields(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	tasks := []model.Task{
		{ID: "c", Title: "Write schema", Due: "2026-02-09", Status: model.StatusDoing},
		{ID: "a", Title: "Review", Due: "", Status: model.StatusTodo},
		{ID: "b", Title: "Ship", Due: "2026-03-01", Status: model.StatusDone},
	}
	if err := store.Save(ctx, tasks); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, tasks) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, tasks)
	}
}

func TestSQLiteStoreSaveOverwritesWholeSet(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	if err := store.Save(ctx, []model.Task{
		{ID: "1", Title: "A", Status: model.StatusTodo},
		{ID: "2", Title: "B", Status: model.StatusTodo},
	}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(ctx, []model.Task{{ID: "2", Title: "B", Status: model.StatusDone}}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" || got[0].Status != model.StatusDone {
		t.Fatalf("unexpected tasks after overwrite: %#v", got)
	}
}

func TestSQLiteStoreRejectsInvalidStatusAtomically(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	if err := store.Save(ctx, []model.Task{{ID: "1", Title: "keep", Status: model.StatusTodo}}); err != nil {
		t.Fatalf("seed save: %v", err)
	}
	err := store.Save(ctx, []model.Task{
		{ID: "2", Title: "fine", Status: model.StatusTodo},
		{ID: "3", Title: "bad", Status: model.Status("later")},
	})
	if err == nil {
		t.Fatal("expected check constraint error")
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected failed save to roll back, got %#v", got)
	}
}

func TestOpenSQLiteCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "lanes.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()
	if err := store.Save(context.Background(), []model.Task{{ID: "1", Title: "A", Status: model.StatusTodo}}); err != nil {
		t.Fatalf("save: %v", err)
	}
}
