package controller

import "github.com/sandeepkv93/lanes/internal/model"

// gridTargets flattens the focus grid column by column: each column cell is
// followed by its tasks.
func (c *Controller) gridTargets() []CellRef {
	var targets []CellRef
	for _, col := range c.ui.Columns() {
		targets = append(targets, ColumnCell(col))
		for _, id := range c.ui.TasksIn(col) {
			targets = append(targets, TaskCell(col, id))
		}
	}
	return targets
}

func (c *Controller) cycleGridFocus(forward bool) {
	targets := c.gridTargets()
	if len(targets) == 0 {
		return
	}
	current := c.ui.CurrentFocus()
	active := -1
	for i, t := range targets {
		if t.Same(current) {
			active = i
			break
		}
	}
	c.ui.FocusCell(targets[nextFocusIndex(active, len(targets), forward)])
}

func nextFocusIndex(active, size int, forward bool) int {
	switch {
	case active == -1 && forward:
		return 0
	case active == -1:
		return size - 1
	case forward && active >= size-1:
		return 0
	case !forward && active <= 0:
		return size - 1
	case forward:
		return active + 1
	default:
		return active - 1
	}
}

// focusAdjacentTask moves within the focused column only. From the column
// cell itself it jumps to the first (down) or last (up) task.
func (c *Controller) focusAdjacentTask(focus CellRef, direction int) {
	if !focus.InColumn() {
		return
	}
	tasks := c.ui.TasksIn(focus.Column)
	if len(tasks) == 0 {
		return
	}
	active := -1
	if focus.IsTask() {
		active = indexOfString(tasks, focus.TaskID)
	}
	if active == -1 {
		if direction > 0 {
			c.ui.FocusCell(TaskCell(focus.Column, tasks[0]))
		} else {
			c.ui.FocusCell(TaskCell(focus.Column, tasks[len(tasks)-1]))
		}
		return
	}
	next := active + direction
	if next < 0 || next >= len(tasks) {
		return
	}
	c.ui.FocusCell(TaskCell(focus.Column, tasks[next]))
}

func (c *Controller) focusAdjacentColumn(focus CellRef, direction int) {
	if !focus.InColumn() {
		return
	}
	columns := c.ui.Columns()
	current := indexOfStatus(columns, focus.Column)
	if current == -1 {
		return
	}
	next := current + direction
	if next < 0 || next >= len(columns) {
		return
	}
	c.ui.FocusCell(ColumnCell(columns[next]))
}

func indexOfString(items []string, want string) int {
	for i, s := range items {
		if s == want {
			return i
		}
	}
	return -1
}

func indexOfStatus(items []model.Status, want model.Status) int {
	for i, s := range items {
		if s == want {
			return i
		}
	}
	return -1
}
