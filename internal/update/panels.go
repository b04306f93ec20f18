package update

import (
	"github.com/sandeepkv93/lanes/internal/controller"
	"github.com/sandeepkv93/lanes/internal/views"
)

const (
	moveIndicatorText = "Move mode: (1) Todo, (2) Doing, (3) Done. Esc to cancel."
	undoToastText     = "Task deleted. Press Ctrl+Z to undo."
)

func (m Model) renderBoard() string {
	b := m.board
	focus := b.CurrentFocus()
	data := views.BoardData{}
	for _, col := range b.Columns() {
		cd := views.ColumnData{
			Label:   col.Label(),
			Focused: focus.Kind == controller.CellColumn && focus.Column == col,
		}
		for _, id := range b.TasksIn(col) {
			task, _ := b.taskByID(id)
			cd.Tasks = append(cd.Tasks, views.TaskData{
				ID:            task.ID,
				Title:         task.Title,
				Due:           task.Due,
				Focused:       focus.IsTask() && focus.TaskID == id,
				Selected:      b.marks.selected == id,
				PendingDelete: b.marks.pendingDelete == id,
				MoveTarget:    b.marks.moveTarget && b.marks.selected == id,
				Dragging:      b.drag.active && b.drag.taskID == id,
			})
		}
		data.Columns = append(data.Columns, cd)
	}
	return views.RenderBoard(data)
}

func (m Model) renderAddForm() string {
	f := m.board.form
	return views.RenderAddForm(views.AddFormData{
		TitleView:    f.title.View(),
		DueView:      f.due.View(),
		StatusLabel:  f.status.Label(),
		FocusedField: focusedControl(m.board.CurrentFocus(), false),
	})
}

func (m Model) renderOverlay() string {
	if m.board.modal.open {
		md := m.board.modal
		return views.RenderModal(views.ModalData{
			TaskID:       md.taskID,
			TitleView:    md.title.View(),
			DueView:      md.due.View(),
			StatusLabel:  md.status.Label(),
			FocusedField: focusedControl(m.board.CurrentFocus(), true),
			ErrorText:    md.err,
		})
	}
	return m.renderHelpIfVisible()
}

func (m Model) renderIndicator() string {
	if !m.board.indicator {
		return ""
	}
	return moveIndicatorText
}

func (m Model) renderToast() string {
	if !m.board.toastOn {
		return ""
	}
	return undoToastText
}

func focusedControl(focus controller.CellRef, inModal bool) string {
	if focus.Control == "" || focus.InModal != inModal {
		return ""
	}
	return focus.Control
}
