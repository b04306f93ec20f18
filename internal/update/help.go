package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/lanes/internal/views"
)

type KeyBinding struct {
	Key          string
	Precondition string
	Action       string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	return views.RenderHelpPanel(views.HelpPanelData{
		Markdown: m.helpMarkdown(),
		HelpView: m.helpModel.FullHelpView(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}.FullHelp()),
	})
}

func (m Model) boardBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "Escape", Precondition: "any", Action: "cancel mode, close modal"},
		{Key: "n/N", Precondition: "not in text input", Action: "enter ADD mode, focus title field"},
		{Key: "e/E", Precondition: "focus on a task", Action: "open edit modal, enter EDIT mode"},
		{Key: "m/M", Precondition: "not in text input", Action: "enter MOVE mode"},
		{Key: "Backspace", Precondition: "focus on a task", Action: "delete with undo"},
		{Key: "1/2/3", Precondition: "MOVE mode, focus on task", Action: "move to todo/doing/done"},
		{Key: "Enter", Precondition: "focus on button-like element", Action: "activate it"},
		{Key: "ArrowUp/Down", Precondition: "any", Action: "move focus within column"},
		{Key: "ArrowLeft/Right", Precondition: "any", Action: "move focus across columns"},
		{Key: "Ctrl/Alt+Z", Precondition: "undo buffer non-empty", Action: "restore last deleted task"},
		{Key: "Tab / Shift+Tab", Precondition: "MOVE mode", Action: "cycle column/task focus grid"},
	}
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Help, Precondition: "not in text input", Action: "toggle help panel"},
		{Key: m.Keys.Quit, Precondition: "not in text input", Action: "quit app"},
		{Key: "ctrl+c", Precondition: "any", Action: "quit app"},
	}
}

func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Shortcuts\n\n| Key | Precondition | Effect |\n|---|---|---|\n")
	for _, kb := range append(m.boardBindings(), m.globalBindings()...) {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", kb.Key, kb.Precondition, kb.Action))
	}
	return b.String()
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.boardBindings(), m.globalBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

func (m Model) shortHelpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		key.NewBinding(key.WithKeys(m.Keys.Help), key.WithHelp(m.Keys.Help, "help")),
		key.NewBinding(key.WithKeys(m.Keys.Quit), key.WithHelp(m.Keys.Quit, "quit")),
	}
}
