package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/service"
)

// ModalValues is what the edit form holds when Save is pressed.
type ModalValues struct {
	Title  string
	Due    string
	Status model.Status
}

// SaveModal writes the edit form back to the task. A validation error leaves
// the modal open.
func (c *Controller) SaveModal(ctx context.Context, id string, values ModalValues) error {
	title, due, status := values.Title, values.Due, values.Status
	err := c.tasks.UpdateTask(ctx, id, service.TaskUpdate{
		Title:  &title,
		Due:    &due,
		Status: &status,
	})
	if err != nil {
		c.logger.Warn("save from modal failed", "task_id", id, "err", err)
		return err
	}
	c.modal.Close()
	c.session.ResetMode()
	c.ui.Render()
	return nil
}

// DeleteFromModal removes the task permanently. Any earlier undo entry stays
// restorable.
func (c *Controller) DeleteFromModal(ctx context.Context, id string) error {
	if err := c.tasks.DeleteTask(ctx, id, false); err != nil {
		return err
	}
	c.modal.Close()
	c.session.ResetMode()
	c.session.ClearSelection()
	c.ui.Render()
	return nil
}

func (c *Controller) CloseModal() {
	c.modal.Close()
	c.session.ResetMode()
	c.ui.UpdateSelectionVisuals()
}

// SubmitAdd reports whether a task was created. A blank title is ignored.
func (c *Controller) SubmitAdd(ctx context.Context, in service.NewTask) (bool, error) {
	if strings.TrimSpace(in.Title) == "" {
		return false, nil
	}
	task, err := c.tasks.AddTask(ctx, in)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			c.logger.Warn("add rejected", "err", err)
		}
		return false, err
	}
	c.logger.Info("task added", "task_id", task.ID, "status", task.Status)
	c.ui.ResetAddForm()
	c.session.ResetMode()
	c.ui.Render()
	return true, nil
}

// DropTask applies the result of a drag gesture.
func (c *Controller) DropTask(ctx context.Context, id string, status model.Status) error {
	if err := c.tasks.UpdateTaskStatus(ctx, id, status); err != nil {
		return err
	}
	c.ui.Render()
	return nil
}

// FocusChanged tracks the last focused task as the selection.
func (c *Controller) FocusChanged(ref CellRef) {
	if !ref.IsTask() {
		return
	}
	c.session.SelectedTaskID = ref.TaskID
	c.ui.UpdateSelectionVisuals()
}
