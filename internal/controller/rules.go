package controller

import (
	"context"

	"github.com/sandeepkv93/lanes/internal/model"
)

type rule struct {
	name   string
	match  func(c *Controller, ev KeyEvent, kc keyContext) bool
	handle func(c *Controller, ev KeyEvent, kc keyContext) (Outcome, error)
}

func handled() Outcome { return Outcome{Handled: true, PreventDefault: true} }
func passedOn() Outcome { return Outcome{Handled: true} }

// dispatchTable is evaluated top to bottom; order is precedence.
func dispatchTable() []rule {
	return []rule{
		{
			name: "move-tab",
			match: func(c *Controller, ev KeyEvent, _ keyContext) bool {
				return c.session.Mode == ModeMove && ev.is(KeyTab)
			},
			handle: func(c *Controller, ev KeyEvent, _ keyContext) (Outcome, error) {
				c.cycleGridFocus(!ev.Shift)
				return handled(), nil
			},
		},
		{
			name: "escape",
			match: func(_ *Controller, ev KeyEvent, _ keyContext) bool {
				return ev.is(KeyEscape)
			},
			handle: func(c *Controller, _ KeyEvent, _ keyContext) (Outcome, error) {
				if c.modal.IsOpen() {
					c.modal.Close()
				}
				c.session.ResetMode()
				c.ui.HideMoveIndicator()
				c.ui.UpdateSelectionVisuals()
				return handled(), nil
			},
		},
		{
			// While the modal is open it traps focus: only Enter is special,
			// every other key goes to the focused modal control.
			name: "modal",
			match: func(c *Controller, _ KeyEvent, _ keyContext) bool {
				return c.modal.IsOpen()
			},
			handle: func(c *Controller, ev KeyEvent, kc keyContext) (Outcome, error) {
				if !ev.is(KeyEnter) {
					return passedOn(), nil
				}
				if kc.onButton && kc.focus.InModal {
					c.ui.Activate(kc.focus)
					return handled(), nil
				}
				if kc.inTextInput && kc.focus.InModal {
					return passedOn(), nil
				}
				return handled(), nil
			},
		},
		{
			name: "add",
			match: func(_ *Controller, ev KeyEvent, kc keyContext) bool {
				return ev.isLetter("n") && !kc.inTextInput
			},
			handle: func(c *Controller, _ KeyEvent, _ keyContext) (Outcome, error) {
				c.session.Mode = ModeAdd
				c.ui.FocusTitleInput()
				return handled(), nil
			},
		},
		{
			name: "edit",
			match: func(_ *Controller, ev KeyEvent, kc keyContext) bool {
				return ev.isLetter("e") && kc.onTask
			},
			handle: func(c *Controller, _ KeyEvent, kc keyContext) (Outcome, error) {
				task, err := c.tasks.MustGetTask(context.Background(), kc.focus.TaskID)
				if err != nil {
					return handled(), err
				}
				c.modal.Open(task)
				c.session.Mode = ModeEdit
				return handled(), nil
			},
		},
		{
			name: "move",
			match: func(_ *Controller, ev KeyEvent, kc keyContext) bool {
				return ev.isLetter("m") && !kc.inTextInput
			},
			handle: func(c *Controller, _ KeyEvent, kc keyContext) (Outcome, error) {
				c.session.Mode = ModeMove
				c.session.PendingMoveTarget = ""
				c.session.PendingDeleteID = ""
				if kc.onTask {
					c.session.SelectedTaskID = kc.focus.TaskID
				}
				c.ui.UpdateSelectionVisuals()
				c.ui.ShowMoveIndicator()
				return handled(), nil
			},
		},
		{
			name: "delete",
			match: func(_ *Controller, ev KeyEvent, kc keyContext) bool {
				return ev.is(KeyBackspace) && kc.onTask
			},
			handle: func(c *Controller, _ KeyEvent, kc keyContext) (Outcome, error) {
				if err := c.tasks.DeleteTask(context.Background(), kc.focus.TaskID, true); err != nil {
					return handled(), err
				}
				c.ui.ShowUndoToast()
				c.endAction()
				return handled(), nil
			},
		},
		{
			// Enter on a text input keeps its default (form submit); anywhere
			// else Enter does nothing but activate a button.
			name: "confirm",
			match: func(_ *Controller, ev KeyEvent, _ keyContext) bool {
				return ev.is(KeyEnter)
			},
			handle: func(c *Controller, _ KeyEvent, kc keyContext) (Outcome, error) {
				if kc.onButton {
					c.ui.Activate(kc.focus)
				}
				if kc.inTextInput {
					return passedOn(), nil
				}
				return handled(), nil
			},
		},
		{
			name: "move-number",
			match: func(c *Controller, ev KeyEvent, kc keyContext) bool {
				_, ok := model.StatusForShortcut(ev.Key)
				return ok && c.session.Mode == ModeMove && kc.onTask
			},
			handle: func(c *Controller, ev KeyEvent, kc keyContext) (Outcome, error) {
				status, _ := model.StatusForShortcut(ev.Key)
				if err := c.tasks.UpdateTaskStatus(context.Background(), kc.focus.TaskID, status); err != nil {
					return handled(), err
				}
				c.endAction()
				return handled(), nil
			},
		},
		{
			name: "arrows",
			match: func(_ *Controller, ev KeyEvent, _ keyContext) bool {
				return ev.is(KeyUp, KeyDown, KeyLeft, KeyRight)
			},
			handle: func(c *Controller, ev KeyEvent, kc keyContext) (Outcome, error) {
				switch ev.Key {
				case KeyDown:
					c.focusAdjacentTask(kc.focus, 1)
				case KeyUp:
					c.focusAdjacentTask(kc.focus, -1)
				case KeyLeft:
					c.focusAdjacentColumn(kc.focus, -1)
				case KeyRight:
					c.focusAdjacentColumn(kc.focus, 1)
				}
				if kc.focus.InColumn() {
					return handled(), nil
				}
				return passedOn(), nil
			},
		},
		{
			name: "undo",
			match: func(_ *Controller, ev KeyEvent, _ keyContext) bool {
				return ev.isUndo()
			},
			handle: func(c *Controller, _ KeyEvent, _ keyContext) (Outcome, error) {
				if !c.tasks.HasUndoDelete() {
					return passedOn(), nil
				}
				if err := c.tasks.UndoDelete(context.Background()); err != nil {
					return handled(), err
				}
				c.ui.Render()
				return handled(), nil
			},
		},
	}
}
