package service

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/storage"
)

// Property: AddTask with a non-blank title yields exactly one new task with a
// fresh id and the trimmed title.
func TestAddTaskProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("add appends one trimmed task with a unique id", prop.ForAll(
		func(title string, pad int, statusIdx int) bool {
			svc := New(storage.NewMemoryStore(seedABC()), WithIDGenerator(sequentialIDs()))
			ctx := context.Background()
			before := svc.GetTasks(ctx)
			raw := strings.Repeat(" ", pad) + title + strings.Repeat(" ", pad)

			task, err := svc.AddTask(ctx, NewTask{Title: raw, Status: model.Statuses[statusIdx]})
			if err != nil {
				return false
			}
			after := svc.GetTasks(ctx)
			if len(after) != len(before)+1 {
				return false
			}
			for _, existing := range before {
				if existing.ID == task.ID {
					return false
				}
			}
			return after[len(after)-1] == task && task.Title == strings.TrimSpace(raw)
		},
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
		gen.IntRange(0, 3),
		gen.IntRange(0, len(model.Statuses)-1),
	))

	properties.TestingRun(t)
}

// Property: delete(id, true) then undo restores the list exactly.
func TestDeleteUndoRestoresProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("delete then undo is identity", prop.ForAll(
		func(size int, pick int) bool {
			seed := make([]model.Task, 0, size)
			for i := 0; i < size; i++ {
				seed = append(seed, model.Task{
					ID:     "t" + strings.Repeat("x", i),
					Title:  "task",
					Status: model.Statuses[i%len(model.Statuses)],
				})
			}
			svc := New(storage.NewMemoryStore(seed))
			ctx := context.Background()
			target := seed[pick%size].ID
			if err := svc.DeleteTask(ctx, target, true); err != nil {
				return false
			}
			if err := svc.UndoDelete(ctx); err != nil {
				return false
			}
			return reflect.DeepEqual(svc.GetTasks(ctx), seed)
		},
		gen.IntRange(1, 12),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
