// Package controller interprets key presses against the current interaction
// mode and focus, and drives the task service and the presentation layer.
package controller

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/service"
)

// FocusProvider exposes the live focus grid. It is queried on every
// navigation request and never cached.
type FocusProvider interface {
	Columns() []model.Status
	TasksIn(col model.Status) []string
	CurrentFocus() CellRef
	FocusCell(ref CellRef)
}

type Presentation interface {
	FocusProvider
	// Activate performs the click action of a button-like cell.
	Activate(ref CellRef)
	// FocusTitleInput focuses the add form title and selects its text.
	FocusTitleInput()
	ResetAddForm()
	UpdateSelectionVisuals()
	ShowMoveIndicator()
	HideMoveIndicator()
	ShowUndoToast()
	Render()
}

type Modal interface {
	IsOpen() bool
	Open(task model.Task)
	Close()
}

type TaskService interface {
	AddTask(ctx context.Context, in service.NewTask) (model.Task, error)
	MustGetTask(ctx context.Context, id string) (model.Task, error)
	UpdateTask(ctx context.Context, id string, updates service.TaskUpdate) error
	UpdateTaskStatus(ctx context.Context, id string, status model.Status) error
	DeleteTask(ctx context.Context, id string, recordUndo bool) error
	HasUndoDelete() bool
	UndoDelete(ctx context.Context) error
}

// Outcome reports how a key was dispatched. The host performs the key's
// default action only when PreventDefault is false.
type Outcome struct {
	Rule           string
	Handled        bool
	PreventDefault bool
}

type Controller struct {
	session *Session
	tasks   TaskService
	ui      Presentation
	modal   Modal
	logger  *log.Logger
	rules   []rule
}

type Option func(*Controller)

func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(session *Session, tasks TaskService, ui Presentation, modal Modal, opts ...Option) *Controller {
	if session == nil {
		session = NewSession()
	}
	c := &Controller{
		session: session,
		tasks:   tasks,
		ui:      ui,
		modal:   modal,
		logger:  log.New(io.Discard),
		rules:   dispatchTable(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Session() *Session { return c.session }

// HandleKey runs the dispatch table once, stopping at the first rule whose
// predicate matches.
func (c *Controller) HandleKey(ev KeyEvent) (Outcome, error) {
	kc := c.keyContext()
	for _, r := range c.rules {
		if !r.match(c, ev, kc) {
			continue
		}
		out, err := r.handle(c, ev, kc)
		out.Rule = r.name
		if err != nil {
			c.logger.Error("key handler failed", "rule", r.name, "key", ev.Key, "err", err)
			return out, err
		}
		c.logger.Debug("key handled", "rule", r.name, "key", ev.Key, "mode", c.session.Mode)
		return out, nil
	}
	return Outcome{}, nil
}

type keyContext struct {
	focus       CellRef
	inTextInput bool
	onButton    bool
	onTask      bool
}

func (c *Controller) keyContext() keyContext {
	focus := c.ui.CurrentFocus()
	return keyContext{
		focus:       focus,
		inTextInput: focus.IsTextInput(),
		onButton:    focus.IsButtonLike(),
		onTask:      focus.IsTask(),
	}
}

// endAction is the common tail of delete and move.
func (c *Controller) endAction() {
	c.session.ResetMode()
	c.session.ClearSelection()
	c.ui.HideMoveIndicator()
	c.ui.Render()
}
