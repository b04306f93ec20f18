package controller

import "github.com/sandeepkv93/lanes/internal/model"

type CellKind int

const (
	CellNone CellKind = iota
	CellColumn
	CellTask
	CellInput
	CellSelect
	CellButton
)

// CellRef names one focus target. Column is set for column and task cells,
// TaskID for task cells, Control for form controls.
type CellRef struct {
	Kind    CellKind
	Column  model.Status
	TaskID  string
	Control string
	InModal bool
}

func ColumnCell(col model.Status) CellRef {
	return CellRef{Kind: CellColumn, Column: col}
}

func TaskCell(col model.Status, id string) CellRef {
	return CellRef{Kind: CellTask, Column: col, TaskID: id}
}

func InputCell(control string, inModal bool) CellRef {
	return CellRef{Kind: CellInput, Control: control, InModal: inModal}
}

func SelectCell(control string, inModal bool) CellRef {
	return CellRef{Kind: CellSelect, Control: control, InModal: inModal}
}

func ButtonCell(control string, inModal bool) CellRef {
	return CellRef{Kind: CellButton, Control: control, InModal: inModal}
}

func (c CellRef) IsTask() bool { return c.Kind == CellTask && c.TaskID != "" }

// IsTextInput covers free-text inputs and selectors alike.
func (c CellRef) IsTextInput() bool {
	return c.Kind == CellInput || c.Kind == CellSelect
}

// IsButtonLike is true for buttons and for task cards, which activate on
// Enter.
func (c CellRef) IsButtonLike() bool {
	return c.Kind == CellButton || c.IsTask()
}

// InColumn reports whether the cell lives inside a board column.
func (c CellRef) InColumn() bool {
	return (c.Kind == CellColumn || c.Kind == CellTask) && c.Column != ""
}

// Same compares focus identity. Task cells are the same cell across lanes.
func (c CellRef) Same(other CellRef) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case CellTask:
		return c.TaskID == other.TaskID
	case CellColumn:
		return c.Column == other.Column
	case CellNone:
		return true
	default:
		return c.Control == other.Control && c.InModal == other.InModal
	}
}
