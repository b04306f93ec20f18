package controller

import "github.com/sandeepkv93/lanes/internal/model"

type Mode string

const (
	ModeNormal Mode = "normal"
	ModeAdd    Mode = "add"
	ModeEdit   Mode = "edit"
	ModeMove   Mode = "move"
)

func (m Mode) Label() string {
	switch m {
	case ModeAdd:
		return "ADD"
	case ModeEdit:
		return "EDIT"
	case ModeMove:
		return "MOVE"
	default:
		return "NORMAL"
	}
}

// Session is the transient interaction state. It is never persisted.
// PendingDeleteID is reserved: no key path sets it.
type Session struct {
	Mode              Mode         `json:"mode"`
	SelectedTaskID    string       `json:"selectedTaskId,omitempty"`
	PendingDeleteID   string       `json:"pendingDeleteId,omitempty"`
	PendingMoveTarget model.Status `json:"pendingMoveTarget,omitempty"`
}

func NewSession() *Session {
	return &Session{Mode: ModeNormal}
}

// ResetMode returns to NORMAL and clears the pending markers, keeping the
// selection.
func (s *Session) ResetMode() {
	s.Mode = ModeNormal
	s.PendingDeleteID = ""
	s.PendingMoveTarget = ""
}

func (s *Session) ClearSelection() {
	s.SelectedTaskID = ""
}
