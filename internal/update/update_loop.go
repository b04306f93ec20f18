package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/lanes/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.helpModel.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.MouseMsg:
		return m.handleMouse(typed)
	case toastExpiredMsg:
		if typed.seq == m.board.toastSeq {
			m.board.toastOn = false
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("board action failed", "err", typed.Err, "mode", m.ctrl.Session().Mode)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.HelpVisible {
		switch keyStr {
		case m.Keys.Help, "esc", m.Keys.Quit:
			m.HelpVisible = false
			return m, setStatus("help hidden")
		}
		return m, nil
	}

	toastSeq := m.board.toastSeq
	ev := translateKey(msg)
	out, err := m.ctrl.HandleKey(ev)

	var cmds []tea.Cmd
	switch {
	case err != nil:
		cmds = append(cmds, reportError(err))
	case !out.Handled && !m.board.CurrentFocus().IsTextInput() && keyStr == m.Keys.Help:
		m.HelpVisible = true
		cmds = append(cmds, setStatus("help shown"))
	case !out.Handled && !m.board.CurrentFocus().IsTextInput() && keyStr == m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case !out.PreventDefault:
		cmds = append(cmds, m.applyDefault(msg, ev))
	}
	if err == nil && out.Rule == "escape" && m.Status.Text != "" {
		cmds = append(cmds, clearStatus)
	}

	cmds = append(cmds, errorCmds(m.board.drainErrors())...)
	if m.board.toastSeq != toastSeq {
		cmds = append(cmds, m.toastTimer(m.board.toastSeq))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) toastTimer(seq int) tea.Cmd {
	return tea.Tick(m.cfg.UndoToast, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func reportError(err error) tea.Cmd {
	return func() tea.Msg { return AppErrorMsg{Err: err} }
}

// errorCmds surfaces failures raised inside board callbacks.
func errorCmds(errs []error) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(errs))
	for _, err := range errs {
		cmds = append(cmds, reportError(err))
	}
	return cmds
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return SetStatusMsg{Text: text} }
}

func clearStatus() tea.Msg { return ClearStatusMsg{} }

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		status = fmt.Sprintf("status: %s: %s", levelFromError(m.Status.IsError), m.Status.Text)
	}
	session := m.ctrl.Session()
	selected := session.SelectedTaskID
	if selected == "" {
		selected = "-"
	}
	undo := "none"
	if entry, ok := m.board.svc.UndoEntry(); ok {
		undo = entry.Task.Title
	}
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("lanes | mode: %s | selected: %s | undo: %s", session.Mode.Label(), selected, undo),
		Form:       m.renderAddForm(),
		Board:      m.renderBoard(),
		Overlay:    m.renderOverlay(),
		Indicator:  m.renderIndicator(),
		Toast:      m.renderToast(),
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Footer:     m.helpModel.ShortHelpView(m.shortHelpBindings()),
	})
}
