package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation      = errors.New("model: validation failed")
	ErrNotFound        = errors.New("model: task not found")
	ErrNoUndoAvailable = errors.New("model: no deleted task available to undo")
	ErrInvalidStatus   = fmt.Errorf("%w: invalid task status", ErrValidation)
)

type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses lists the lanes in board order.
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}

// Index returns the lane position of s, or -1.
func (s Status) Index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusDoing:
		return "Doing"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// ParseStatus accepts a lane name case-insensitively.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// StatusForShortcut maps the move-mode number keys to lanes.
func StatusForShortcut(key string) (Status, bool) {
	switch key {
	case "1":
		return StatusTodo, true
	case "2":
		return StatusDoing, true
	case "3":
		return StatusDone, true
	default:
		return "", false
	}
}

// Task is also the persisted wire shape.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Due    string `json:"due"`
	Status Status `json:"status"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: task id is required", ErrValidation)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: task title is required", ErrValidation)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	return nil
}

func IndexOf(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
