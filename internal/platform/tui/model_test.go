package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

// isolate keeps config lookups away from the user's real files.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	paddleball.SetConfigPath("")
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newBasicModel(t *testing.T, store *storage.Store) (Model, *paddleball.Game) {
	t.Helper()
	isolate(t)

	g := paddleball.New(config.VariantBasic)
	m := NewModel(g, store, nil, testRuntime)
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}

func TestModelKeyHoldsForOneTick(t *testing.T) {
	m, g := newBasicModel(t, nil)

	m, _ = update(t, m, keyMsg("left"))
	m, _ = update(t, m, tick())
	x := g.World().Paddle.Pos.X
	if x >= 0 {
		t.Fatalf("paddle should move left, x = %v", x)
	}

	m, _ = update(t, m, tick())
	if g.World().Paddle.Pos.X != x {
		t.Errorf("paddle should stop once the key is not repeated, x = %v", g.World().Paddle.Pos.X)
	}
	if g.World().Tick() != 2 {
		t.Errorf("tick = %d, expected 2", g.World().Tick())
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store := openStore(t)
	m, _ := newBasicModel(t, store)

	for range 10 {
		m, _ = update(t, m, tick())
	}
	m, cmd := update(t, m, keyMsg("q"))

	if !isQuit(cmd) || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	runs, err := store.TopRuns("paddleball_basic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Ticks != 10 || runs[0].Seed != 7 || runs[0].Variant != "basic" {
		t.Errorf("unexpected run %+v", runs[0])
	}
}

func TestModelRestartSavesRun(t *testing.T) {
	store := openStore(t)
	m, g := newBasicModel(t, store)

	for range 5 {
		m, _ = update(t, m, tick())
	}
	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, tick())

	if g.World().Tick() != 0 {
		t.Errorf("restart should reset the world, tick = %d", g.World().Tick())
	}

	runs, _ := store.TopRuns("paddleball_basic", 10)
	if len(runs) != 1 || runs[0].Ticks != 5 {
		t.Errorf("restart should save the previous run, got %+v", runs)
	}

	update(t, m, keyMsg("q"))
	runs, _ = store.TopRuns("paddleball_basic", 10)
	if len(runs) != 1 {
		t.Errorf("an empty run should not be saved, got %d runs", len(runs))
	}
}

func TestModelResizeKeepsWorld(t *testing.T) {
	m, g := newBasicModel(t, nil)
	for range 3 {
		m, _ = update(t, m, tick())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.World().Tick() != 3 {
		t.Errorf("resize should not reset the world, tick = %d", g.World().Tick())
	}
	if !strings.Contains(m.View(), "Paddleball") {
		t.Error("view should render the game")
	}
}

func TestModelBackOnlyInsideSession(t *testing.T) {
	m, _ := newBasicModel(t, nil)

	m, _ = update(t, m, keyMsg("p"))
	m, _ = update(t, m, tick())
	m, _ = update(t, m, keyMsg("b"))
	if m.BackToMenu() {
		t.Error("local play has no menu to return to")
	}

	m.allowBack = true
	m, _ = update(t, m, keyMsg("b"))
	if !m.BackToMenu() {
		t.Error("b on a paused session game should return to the menu")
	}
}

func TestSessionFlow(t *testing.T) {
	isolate(t)
	store := openStore(t)

	var s tea.Model = NewSessionModel(store, nil, testRuntime, "paddleball_basic")
	send := func(msg tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		s, cmd = s.Update(msg)
		return cmd
	}
	view := func() sessionView { return s.(SessionModel).view }

	send(keyMsg("enter"))
	if view() != viewGame {
		t.Fatalf("enter should start a game, view = %v", view())
	}
	if id := s.(SessionModel).game.game.ID(); id != "paddleball_basic" {
		t.Errorf("menu should start on the configured variant, got %q", id)
	}

	send(tick())
	send(keyMsg("p"))
	send(tick())
	send(keyMsg("b"))
	if view() != viewMenu {
		t.Fatalf("b on a paused game should return to the menu, view = %v", view())
	}

	runs, _ := store.TopRuns("paddleball_basic", 10)
	if len(runs) != 1 || runs[0].Ticks != 1 {
		t.Errorf("leaving the game should save the run, got %+v", runs)
	}

	send(keyMsg("tab"))
	if view() != viewRuns {
		t.Fatalf("tab should open the run history, view = %v", view())
	}
	if !strings.Contains(s.View(), "Paddleball (Basic)") {
		t.Error("run history should start on the last variant")
	}

	send(keyMsg("esc"))
	if view() != viewMenu {
		t.Fatalf("esc should leave the run history, view = %v", view())
	}

	if cmd := send(keyMsg("q")); !isQuit(cmd) {
		t.Error("q in the menu should quit the session")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawText(0, 0, "abc")
	screen.SetColored(4, 1, '●', core.ColorGreen)

	out := RenderScreen(screen)

	if !strings.Contains(out, "abc") || !strings.Contains(out, "●") {
		t.Errorf("rendered output lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
