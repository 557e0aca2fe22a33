package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/registry"
	"github.com/vovakirdan/paddleball/internal/storage"
)

// statsReporter is implemented by games that can summarize a run for the store.
type statsReporter interface {
	RunStats() core.RunStats
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	allowBack  bool // b on a paused game returns to the session menu
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	if m.allowBack && m.gameState.Paused && m.keys.IsBack(msg) {
		m.saveRun()
		m.backToMenu = true
	}

	return m, nil
}

// handleTick steps the game with the actions collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun()
		m.started = time.Now()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug(ev.Kind, ev.Fields...)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run. Empty runs are skipped.
func (m *Model) saveRun() {
	rs, ok := m.game.(statsReporter)
	if !ok {
		return
	}
	stats := rs.RunStats()
	if stats.Ticks == 0 {
		return
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Variant:  stats.Variant,
		Ticks:    stats.Ticks,
		Hits:     stats.Hits,
		Bounces:  stats.Bounces,
		Seed:     m.config.Seed,
		Duration: time.Since(m.started),
	}
	m.logger.Info("run finished",
		"game", run.GameID,
		"ticks", run.Ticks,
		"hits", run.Hits,
		"bounces", run.Bounces,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under ~/.paddleball/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".paddleball", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the user quits.
// Log lines produced while the alternate screen is active are held back
// and written to stderr once the program exits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var held bytes.Buffer
	playLog := logger.With()
	playLog.SetOutput(&held)

	model := NewModel(game, store, playLog, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	//nolint:errcheck // Best-effort flush of held log lines
	io.Copy(os.Stderr, &held)
	return err
}
