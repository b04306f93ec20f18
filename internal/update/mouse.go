package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/lanes/internal/controller"
	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/views"
)

// handleMouse turns a press on a task and a release over another lane into
// a drop. A release over the same lane is a click, which opens the task.
// While the modal is open a press outside its panel closes it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	b := m.board
	if !m.cfg.Mouse {
		return m, nil
	}
	if b.modal.open {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			!views.OverlayContains(msg.X, msg.Y, m.renderOverlay()) {
			m.ctrl.CloseModal()
		}
		return m, nil
	}
	if m.HelpVisible {
		return m, nil
	}
	col, colOK := views.ColumnAt(msg.X, len(b.Columns()))

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !colOK {
			return m, nil
		}
		status := b.Columns()[col]
		tasks := b.TasksIn(status)
		row, ok := views.RowAt(msg.Y, m.taskHeights(tasks))
		if !ok {
			return m, nil
		}
		if row < 0 {
			b.FocusCell(controller.ColumnCell(status))
			return m, nil
		}
		b.FocusCell(controller.TaskCell(status, tasks[row]))
		b.drag = dragState{active: true, taskID: tasks[row], from: status}
	case tea.MouseActionRelease:
		d := b.drag
		b.drag = dragState{}
		if !d.active || !colOK {
			return m, nil
		}
		target := b.Columns()[col]
		if target == d.from {
			b.Activate(controller.TaskCell(d.from, d.taskID))
		} else {
			m.dropTask(d.taskID, target)
		}
		return m, tea.Batch(errorCmds(b.drainErrors())...)
	}
	return m, nil
}

func (m Model) taskHeights(ids []string) []int {
	heights := make([]int, len(ids))
	for i, id := range ids {
		task, _ := m.board.taskByID(id)
		heights[i] = views.TaskHeight(task.Due)
	}
	return heights
}

func (m Model) dropTask(id string, status model.Status) {
	if err := m.ctrl.DropTask(m.board.ctx, id, status); err != nil {
		m.board.fail(err)
	}
}
