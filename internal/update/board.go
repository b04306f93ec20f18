package update

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/lanes/internal/controller"
	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/service"
)

const (
	controlTitle  = "title"
	controlStatus = "status"
	controlDue    = "due"
	controlAdd    = "add"
	controlSave   = "save"
	controlDelete = "delete"
	controlClose  = "close"
)

type addForm struct {
	title  textinput.Model
	due    textinput.Model
	status model.Status
	// titleSelected makes the next typed text replace the title.
	titleSelected bool
}

type editModal struct {
	open        bool
	taskID      string
	title       textinput.Model
	due         textinput.Model
	status      model.Status
	err         string
	returnFocus controller.CellRef
}

type highlight struct {
	selected      string
	pendingDelete string
	moveTarget    bool
}

type dragState struct {
	active bool
	taskID string
	from   model.Status
}

// Board is the screen state behind the controller's presentation and modal
// capabilities. The task snapshot is what was last rendered.
type Board struct {
	ctx     context.Context
	svc     *service.Service
	session *controller.Session
	ctrl    *controller.Controller
	logger  *log.Logger

	tasks     []model.Task
	focus     controller.CellRef
	form      addForm
	modal     editModal
	marks     highlight
	indicator bool
	toastSeq  int
	toastOn   bool
	drag      dragState
	errs      []error
}

func newBoard(ctx context.Context, svc *service.Service, session *controller.Session, logger *log.Logger) *Board {
	b := &Board{
		ctx:     ctx,
		svc:     svc,
		session: session,
		logger:  logger,
	}
	b.form.title = newInput("title", "What needs doing?", 24)
	b.form.due = newInput("due", "YYYY-MM-DD", 10)
	b.form.status = model.StatusTodo
	b.modal.title = newInput("title", "", 40)
	b.modal.due = newInput("due", "YYYY-MM-DD", 10)
	return b
}

func newInput(name, placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = width
	if name == controlDue {
		in.CharLimit = 10
	}
	return in
}

func (b *Board) Columns() []model.Status { return model.Statuses }

func (b *Board) TasksIn(col model.Status) []string {
	var ids []string
	for _, t := range b.tasks {
		if t.Status == col {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (b *Board) CurrentFocus() controller.CellRef { return b.focus }

// FocusCell moves focus and reports task focus back to the controller, the
// way a focus event would.
func (b *Board) FocusCell(ref controller.CellRef) {
	b.setFocus(ref)
	if ref.IsTask() && b.ctrl != nil {
		b.ctrl.FocusChanged(ref)
	}
}

func (b *Board) setFocus(ref controller.CellRef) {
	b.focus = ref
	for _, in := range []*textinput.Model{&b.form.title, &b.form.due, &b.modal.title, &b.modal.due} {
		in.Blur()
	}
	if ref.Control != controlTitle {
		b.form.titleSelected = false
	}
	if in := b.inputFor(ref); in != nil {
		in.Focus()
	}
}

func (b *Board) inputFor(ref controller.CellRef) *textinput.Model {
	if ref.Kind != controller.CellInput {
		return nil
	}
	switch {
	case ref.InModal && ref.Control == controlTitle:
		return &b.modal.title
	case ref.InModal && ref.Control == controlDue:
		return &b.modal.due
	case ref.Control == controlTitle:
		return &b.form.title
	case ref.Control == controlDue:
		return &b.form.due
	default:
		return nil
	}
}

func (b *Board) Activate(ref controller.CellRef) {
	if ref.IsTask() {
		task, err := b.svc.MustGetTask(b.ctx, ref.TaskID)
		if err != nil {
			b.fail(err)
			return
		}
		b.openModal(task)
		return
	}
	switch ref.Control {
	case controlAdd:
		b.submitAdd()
	case controlSave:
		b.saveModal()
	case controlDelete:
		b.deleteFromModal()
	case controlClose:
		b.ctrl.CloseModal()
	}
}

func (b *Board) FocusTitleInput() {
	b.setFocus(controller.InputCell(controlTitle, false))
	b.form.title.CursorEnd()
	b.form.titleSelected = b.form.title.Value() != ""
}

// ResetAddForm clears the text fields; the chosen lane is kept.
func (b *Board) ResetAddForm() {
	b.form.title.SetValue("")
	b.form.due.SetValue("")
	b.form.titleSelected = false
}

func (b *Board) UpdateSelectionVisuals() {
	b.marks = highlight{
		selected:      b.session.SelectedTaskID,
		pendingDelete: b.session.PendingDeleteID,
		moveTarget:    b.session.PendingMoveTarget != "",
	}
}

func (b *Board) ShowMoveIndicator() { b.indicator = true }

func (b *Board) HideMoveIndicator() { b.indicator = false }

func (b *Board) ShowUndoToast() {
	b.toastSeq++
	b.toastOn = true
}

// Render reloads the snapshot. Focus returns to the selected task when it is
// still on the board; a focused task that vanished hands focus to its lane.
func (b *Board) Render() {
	b.tasks = b.svc.GetTasks(b.ctx)
	if sel := b.session.SelectedTaskID; sel != "" {
		if task, ok := b.taskByID(sel); ok {
			b.setFocus(controller.TaskCell(task.Status, task.ID))
			b.UpdateSelectionVisuals()
			return
		}
	}
	if b.focus.IsTask() {
		if task, ok := b.taskByID(b.focus.TaskID); ok {
			b.setFocus(controller.TaskCell(task.Status, task.ID))
		} else {
			b.setFocus(controller.ColumnCell(b.focus.Column))
		}
	}
	b.UpdateSelectionVisuals()
}

func (b *Board) taskByID(id string) (model.Task, bool) {
	idx := model.IndexOf(b.tasks, id)
	if idx < 0 {
		return model.Task{}, false
	}
	return b.tasks[idx], true
}

func (b *Board) initialFocus() controller.CellRef {
	return controller.ColumnCell(model.StatusTodo)
}

// focusOrder is the default Tab order. An open modal traps focus.
func (b *Board) focusOrder() []controller.CellRef {
	if b.modal.open {
		return []controller.CellRef{
			controller.InputCell(controlTitle, true),
			controller.InputCell(controlDue, true),
			controller.SelectCell(controlStatus, true),
			controller.ButtonCell(controlSave, true),
			controller.ButtonCell(controlDelete, true),
			controller.ButtonCell(controlClose, true),
		}
	}
	order := []controller.CellRef{
		controller.InputCell(controlTitle, false),
		controller.SelectCell(controlStatus, false),
		controller.InputCell(controlDue, false),
		controller.ButtonCell(controlAdd, false),
	}
	for _, col := range b.Columns() {
		order = append(order, controller.ColumnCell(col))
		for _, id := range b.TasksIn(col) {
			order = append(order, controller.TaskCell(col, id))
		}
	}
	return order
}

func (b *Board) cycleFocus(forward bool) {
	order := b.focusOrder()
	active := -1
	for i, ref := range order {
		if ref.Same(b.focus) {
			active = i
			break
		}
	}
	next := 0
	switch {
	case active == -1 && !forward:
		next = len(order) - 1
	case active == -1:
		next = 0
	case forward:
		next = (active + 1) % len(order)
	default:
		next = (active - 1 + len(order)) % len(order)
	}
	b.FocusCell(order[next])
}

func (b *Board) submitAdd() {
	in := service.NewTask{
		Title:  b.form.title.Value(),
		Due:    b.form.due.Value(),
		Status: b.form.status,
	}
	if _, err := b.ctrl.SubmitAdd(b.ctx, in); err != nil {
		b.fail(err)
	}
}

func (b *Board) saveModal() {
	values := controller.ModalValues{
		Title:  b.modal.title.Value(),
		Due:    b.modal.due.Value(),
		Status: b.modal.status,
	}
	if err := b.ctrl.SaveModal(b.ctx, b.modal.taskID, values); err != nil {
		b.modal.err = err.Error()
		b.fail(err)
	}
}

func (b *Board) deleteFromModal() {
	if err := b.ctrl.DeleteFromModal(b.ctx, b.modal.taskID); err != nil {
		b.fail(err)
	}
}

func (b *Board) openModal(task model.Task) {
	b.modal.open = true
	b.modal.taskID = task.ID
	b.modal.title.SetValue(task.Title)
	b.modal.title.CursorEnd()
	b.modal.due.SetValue(task.Due)
	b.modal.status = task.Status
	b.modal.err = ""
	b.modal.returnFocus = b.focus
	b.setFocus(controller.InputCell(controlTitle, true))
}

func (b *Board) closeModal() {
	if !b.modal.open {
		return
	}
	b.modal.open = false
	b.modal.err = ""
	b.setFocus(b.modal.returnFocus)
}

func (b *Board) cycleStatus(ref controller.CellRef, step int) {
	target := &b.form.status
	if ref.InModal {
		target = &b.modal.status
	}
	*target = shiftStatus(*target, step)
}

func (b *Board) fail(err error) {
	b.errs = append(b.errs, err)
}

// drainErrors hands over failures raised inside capability callbacks.
func (b *Board) drainErrors() []error {
	errs := b.errs
	b.errs = nil
	return errs
}

func (b *Board) Modal() controller.Modal { return modalHandle{b: b} }

type modalHandle struct {
	b *Board
}

func (h modalHandle) IsOpen() bool { return h.b.modal.open }

func (h modalHandle) Open(task model.Task) { h.b.openModal(task) }

func (h modalHandle) Close() { h.b.closeModal() }
