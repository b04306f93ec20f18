package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/lanes/internal/config"
	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/update"
)

type fakeProgram struct {
	model tea.Model
	runFn func(tea.Model) (tea.Model, error)
}

func (p fakeProgram) Run() (tea.Model, error) {
	if p.runFn == nil {
		return p.model, nil
	}
	return p.runFn(p.model)
}

type harness struct {
	app    *app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	dir    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, name := range []string{"LANES_STORE_BACKEND", "LANES_DB_PATH", "LANES_LOG_LEVEL", "LANES_LOG_FILE", "LANES_UNDO_TOAST_SECONDS", "LANES_MOUSE"} {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	a := newApp(stdout, stderr)
	a.paths = func() (config.Paths, error) {
		return config.PathsFor(filepath.Join(dir, "config"), filepath.Join(dir, "data"))
	}
	return &harness{app: a, stdout: stdout, stderr: stderr, dir: dir}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	h.stdout.Reset()
	root := newRootCmd(h.app)
	root.SetArgs(args)
	return root.Execute()
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	if err := h.run(t, args...); err != nil {
		t.Fatalf("lanes %v: %v (stderr: %s)", args, err, h.stderr.String())
	}
	return h.stdout.String()
}

func TestAddListMoveRemoveWithSQLite(t *testing.T) {
	h := newHarness(t)
	id := strings.TrimSpace(h.mustRun(t, "add", "write", "docs", "--due", "2026-02-09"))
	if id == "" {
		t.Fatal("expected task id on stdout")
	}

	out := h.mustRun(t, "list")
	if !strings.Contains(out, "Todo (1)") || !strings.Contains(out, "write docs") || !strings.Contains(out, "9 February, 2026") {
		t.Fatalf("unexpected list output:\n%s", out)
	}

	h.mustRun(t, "move", id, "Done")
	var tasks []model.Task
	if err := json.Unmarshal([]byte(h.mustRun(t, "list", "--json")), &tasks); err != nil {
		t.Fatalf("decode list json: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Status != model.StatusDone {
		t.Fatalf("unexpected tasks: %#v", tasks)
	}

	h.mustRun(t, "rm", id)
	if out := h.mustRun(t, "list"); !strings.Contains(out, "Done (0)") {
		t.Fatalf("expected empty board, got:\n%s", out)
	}
}

func TestJSONBackendFlag(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.dir, "board.json")
	h.mustRun(t, "--backend", "json", "--db", path, "add", "x", "--status", "doing")
	out := h.mustRun(t, "--backend", "json", "--db", path, "list")
	if !strings.Contains(out, "Doing (1)") {
		t.Fatalf("unexpected list output:\n%s", out)
	}
}

func TestAddRejectsBadStatus(t *testing.T) {
	h := newHarness(t)
	if err := h.run(t, "add", "x", "--status", "later"); err == nil {
		t.Fatal("expected invalid status error")
	}
}

func TestMoveUnknownTaskFails(t *testing.T) {
	h := newHarness(t)
	err := h.run(t, "move", "nope", "done")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestPathsCommand(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun(t, "paths")
	if !strings.Contains(out, filepath.Join(h.dir, "data", "lanes", "lanes.db")) || !strings.Contains(out, "(sqlite)") {
		t.Fatalf("unexpected paths output:\n%s", out)
	}
}

func TestRootRunsBoardProgram(t *testing.T) {
	h := newHarness(t)
	var ran bool
	h.app.newProgram = func(m tea.Model, _ ...tea.ProgramOption) program {
		return fakeProgram{model: m, runFn: func(m tea.Model) (tea.Model, error) {
			ran = true
			if _, ok := m.(update.Model); !ok {
				t.Fatalf("expected board model, got %T", m)
			}
			updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
			return updated, nil
		}}
	}
	h.mustRun(t, "--backend", "memory")
	if !ran {
		t.Fatal("expected the board program to run")
	}
}
