package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// BoardTop is the screen row of the board's top border.
	BoardTop = 2
	// ColumnWidth is the outer width of one lane, borders included.
	ColumnWidth = 34

	columnInner = ColumnWidth - 4
)

type TaskData struct {
	ID            string
	Title         string
	Due           string
	Focused       bool
	Selected      bool
	PendingDelete bool
	MoveTarget    bool
	Dragging      bool
}

type ColumnData struct {
	Label   string
	Focused bool
	Tasks   []TaskData
}

type BoardData struct {
	Columns []ColumnData
}

type AddFormData struct {
	TitleView    string
	DueView      string
	StatusLabel  string
	FocusedField string
}

type ModalData struct {
	TaskID       string
	TitleView    string
	DueView      string
	StatusLabel  string
	FocusedField string
	ErrorText    string
}

type HelpPanelData struct {
	Markdown string
	HelpView string
}

var (
	columnStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(ColumnWidth - 2)
	focusedColumnStyle = columnStyle.BorderForeground(lipgloss.Color("12"))
	columnTitleStyle   = lipgloss.NewStyle().Bold(true)
	focusedTaskStyle   = lipgloss.NewStyle().Reverse(true)
	selectedTaskStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	pendingDeleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	moveTargetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	draggingStyle      = lipgloss.NewStyle().Faint(true)
	focusedFieldStyle  = lipgloss.NewStyle().Underline(true)
	buttonStyle        = lipgloss.NewStyle().Padding(0, 1)
	focusedButtonStyle = buttonStyle.Reverse(true)
)

// ColumnAt maps a screen x to a lane index.
func ColumnAt(x, columns int) (int, bool) {
	if x < 0 {
		return 0, false
	}
	idx := x / ColumnWidth
	return idx, idx < columns
}

// TaskHeight is the number of screen rows a task occupies in its lane. A due
// date gets a line of its own.
func TaskHeight(due string) int {
	if due == "" {
		return 1
	}
	return 2
}

// RowAt maps a screen y to a task inside a lane whose tasks are heights
// rows tall. Row -1 is the lane title line.
func RowAt(y int, heights []int) (int, bool) {
	rel := y - BoardTop - 2
	switch {
	case rel == -1:
		return -1, true
	case rel < -1:
		return 0, false
	}
	for i, h := range heights {
		if rel < h {
			return i, true
		}
		rel -= h
	}
	return 0, false
}

// OverlayContains reports whether a screen cell falls on the overlay panel,
// which RenderApp draws at BoardTop.
func OverlayContains(x, y int, overlay string) bool {
	w, h := lipgloss.Size(panelStyle.Render(overlay))
	return x >= 0 && x < w && y >= BoardTop && y < BoardTop+h
}

func RenderBoard(data BoardData) string {
	cols := make([]string, 0, len(data.Columns))
	for _, col := range data.Columns {
		var b strings.Builder
		title := fmt.Sprintf("%s (%d)", col.Label, len(col.Tasks))
		if col.Focused {
			title = "> " + title
		}
		b.WriteString(columnTitleStyle.Render(title))
		if len(col.Tasks) == 0 {
			b.WriteString("\n(empty)")
		}
		for _, task := range col.Tasks {
			b.WriteString("\n")
			b.WriteString(renderTask(task))
		}
		style := columnStyle
		if col.Focused || hasFocusedTask(col.Tasks) {
			style = focusedColumnStyle
		}
		cols = append(cols, style.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderTask(task TaskData) string {
	marker := "  "
	switch {
	case task.MoveTarget:
		marker = "→ "
	case task.Selected:
		marker = "* "
	}
	line := marker + runewidth.Truncate(task.Title, columnInner-2, "…")
	if task.Due != "" {
		line += "\n  " + runewidth.Truncate("Due: "+FormatDue(task.Due), columnInner-2, "…")
	}

	style := lipgloss.NewStyle()
	switch {
	case task.PendingDelete:
		style = pendingDeleteStyle
	case task.MoveTarget:
		style = moveTargetStyle
	case task.Selected:
		style = selectedTaskStyle
	}
	if task.Dragging {
		style = draggingStyle
	}
	if task.Focused {
		style = style.Inherit(focusedTaskStyle)
	}
	return style.Render(line)
}

func hasFocusedTask(tasks []TaskData) bool {
	for _, t := range tasks {
		if t.Focused {
			return true
		}
	}
	return false
}

// FormatDue renders 2026-02-09 as "9 February, 2026". Anything that is not
// a calendar date is shown verbatim.
func FormatDue(due string) string {
	parsed, err := time.Parse("2006-01-02", due)
	if err != nil {
		return due
	}
	return fmt.Sprintf("%d %s, %d", parsed.Day(), parsed.Month(), parsed.Year())
}

func RenderAddForm(data AddFormData) string {
	return strings.Join([]string{
		field("title", data.TitleView, data.FocusedField),
		field("status", "< "+data.StatusLabel+" >", data.FocusedField),
		field("due", data.DueView, data.FocusedField),
		button("add", "Add", data.FocusedField),
	}, "  ")
}

func RenderModal(data ModalData) string {
	var b strings.Builder
	b.WriteString(columnTitleStyle.Render("Edit task " + data.TaskID))
	b.WriteString("\n" + field("title", data.TitleView, data.FocusedField))
	b.WriteString("\n" + field("due", data.DueView, data.FocusedField))
	b.WriteString("\n" + field("status", "< "+data.StatusLabel+" >", data.FocusedField))
	b.WriteString("\n" + strings.Join([]string{
		button("save", "Save", data.FocusedField),
		button("delete", "Delete", data.FocusedField),
		button("close", "Close", data.FocusedField),
	}, " "))
	if data.ErrorText != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+data.ErrorText))
	}
	return b.String()
}

func RenderHelpPanel(data HelpPanelData) string {
	md := RenderMarkdown(data.Markdown)
	if data.HelpView == "" {
		return md
	}
	return md + "\n\n" + data.HelpView
}

func field(name, view, focused string) string {
	label := name + ":"
	if name == focused {
		label = focusedFieldStyle.Render(label)
	}
	return label + " " + view
}

func button(name, label, focused string) string {
	if name == focused {
		return focusedButtonStyle.Render("[" + label + "]")
	}
	return buttonStyle.Render("[" + label + "]")
}
