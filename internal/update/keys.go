package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/lanes/internal/controller"
)

// translateKey maps a terminal key to the controller's key vocabulary.
// Terminals cannot report Cmd, so alt stands in for it.
func translateKey(msg tea.KeyMsg) controller.KeyEvent {
	s := msg.String()
	switch s {
	case "esc":
		return controller.KeyEvent{Key: controller.KeyEscape}
	case "tab":
		return controller.KeyEvent{Key: controller.KeyTab}
	case "shift+tab":
		return controller.KeyEvent{Key: controller.KeyTab, Shift: true}
	case "enter":
		return controller.KeyEvent{Key: controller.KeyEnter}
	case "backspace":
		return controller.KeyEvent{Key: controller.KeyBackspace}
	case "up":
		return controller.KeyEvent{Key: controller.KeyUp}
	case "down":
		return controller.KeyEvent{Key: controller.KeyDown}
	case "left":
		return controller.KeyEvent{Key: controller.KeyLeft}
	case "right":
		return controller.KeyEvent{Key: controller.KeyRight}
	}
	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok && len(rest) == 1 {
		return controller.KeyEvent{Key: rest, Ctrl: true}
	}
	if msg.Alt && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return controller.KeyEvent{Key: string(msg.Runes), Meta: true}
	}
	if msg.Type == tea.KeyRunes {
		return controller.KeyEvent{Key: string(msg.Runes)}
	}
	return controller.KeyEvent{Key: s}
}

// applyDefault performs what the focused control does with a key the
// controller left alone.
func (m Model) applyDefault(msg tea.KeyMsg, ev controller.KeyEvent) tea.Cmd {
	b := m.board
	focus := b.CurrentFocus()
	if ev.Key == controller.KeyTab {
		b.cycleFocus(!ev.Shift)
		return nil
	}

	switch focus.Kind {
	case controller.CellInput:
		if ev.Key == controller.KeyEnter {
			m.submitFrom(focus)
			return nil
		}
		in := b.inputFor(focus)
		if in == nil {
			return nil
		}
		if b.form.titleSelected && !focus.InModal && msg.Type == tea.KeyRunes {
			in.SetValue("")
		}
		b.form.titleSelected = false
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	case controller.CellSelect:
		switch ev.Key {
		case controller.KeyEnter:
			m.submitFrom(focus)
		case controller.KeyLeft:
			b.cycleStatus(focus, -1)
		case controller.KeyRight, " ":
			b.cycleStatus(focus, 1)
		}
	}
	return nil
}

func (m Model) submitFrom(focus controller.CellRef) {
	if focus.InModal {
		m.board.saveModal()
		return
	}
	m.board.submitAdd()
}
