package update

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/lanes/internal/controller"
	"github.com/sandeepkv93/lanes/internal/service"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Help string
	Quit string
}

// Model is the bubbletea host. Copies share one *Board, which holds all
// state the controller mutates through its capabilities.
type Model struct {
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	board     *Board
	ctrl      *controller.Controller
	cfg       RuntimeConfig
	logger    *log.Logger
	helpModel help.Model
	width     int
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// toastExpiredMsg hides the undo toast unless a newer one replaced it.
type toastExpiredMsg struct {
	seq int
}

func NewModel(svc *service.Service) Model {
	return NewModelWithConfig(svc, DefaultRuntimeConfig(), nil)
}

func NewModelWithConfig(svc *service.Service, cfg RuntimeConfig, logger *log.Logger) Model {
	if svc == nil {
		svc = service.New(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg = cfg.normalized()

	session := controller.NewSession()
	board := newBoard(context.Background(), svc, session, logger)
	ctrl := controller.New(session, svc, board, board.Modal(), controller.WithLogger(logger))
	board.ctrl = ctrl
	board.Render()
	board.FocusCell(board.initialFocus())

	m := Model{
		Keys:      GlobalKeyMap{Help: "?", Quit: "q"},
		board:     board,
		ctrl:      ctrl,
		cfg:       cfg,
		logger:    logger,
		helpModel: help.New(),
	}
	return m
}

func (m Model) Session() controller.Session {
	return *m.ctrl.Session()
}

func (m Model) Focus() controller.CellRef {
	return m.board.CurrentFocus()
}
