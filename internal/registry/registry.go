// Package registry holds the factories for every playable simulation.
// Variants register themselves in init(), so the CLI, TUI and SSH server
// can list and create them by id.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/paddleball/internal/core"
)

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is driven by the platform one fixed tick at a time.
// Implementations never touch the terminal; input arrives as actions and
// output goes into a Screen buffer.
type Game interface {
	// ID is the registry key, also used as the run history key.
	ID() string

	// Title is the display name.
	Title() string

	// Reset rebuilds the world. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by 1/TickRate seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst. dst is cleared by the game.
	Render(dst *core.Screen)

	// State returns score and pause state.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: f().Title()}
}

// List returns every registered game sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
