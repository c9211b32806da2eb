package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vradchenko/puff-arcade/internal/core"
	"github.com/vradchenko/puff-arcade/internal/platform/sound"
	"github.com/vradchenko/puff-arcade/internal/registry"
	"github.com/vradchenko/puff-arcade/internal/storage"
)

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *sound.Player
	keymap     *KeyMapper
	sampler    *core.Sampler
	config     core.RuntimeConfig
	gameState  core.GameState
	lastTick   time.Time
	accum      float64
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current ending
}

// maxFrameTime caps the wall-clock delta fed to the accumulator so a stalled
// terminal never turns into a burst of catch-up physics.
const maxFrameTime = 0.25

// NewModel creates a new Bubble Tea model for the given game. The store and
// sound player may be nil; the model degrades to no score persistence and
// silent play.
func NewModel(game registry.Game, store *storage.Store, snd *sound.Player, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		sound:   snd,
		keymap:  NewKeyMapper(),
		sampler: core.NewSampler(cfg.TickRate),
		config:  cfg,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions, quit := m.keymap.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	for _, a := range actions {
		m.sampler.Press(a)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	// Note: This resets the game - could be improved to preserve state
	if !m.gameState.GameOver && !m.gameState.Won {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick drains the wall-clock accumulator in fixed dt slices, stepping
// the simulation once per slice. A slow frame produces several catch-up steps;
// the clamp keeps a long stall from ever flooding the game with them.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		elapsed := now.Sub(m.lastTick).Seconds()
		if elapsed > maxFrameTime {
			elapsed = maxFrameTime
		}
		m.accum += elapsed
	}
	m.lastTick = now

	dt := m.config.Dt()
	for m.accum >= dt {
		m.accum -= dt

		result := m.game.Step(m.sampler.Sample())
		m.gameState = result.State

		// Play audio cues raised this tick
		if m.sound != nil {
			for _, cue := range result.Cues {
				m.sound.Play(cue)
			}
		}

		// Save score on game end (once)
		ended := m.gameState.GameOver || m.gameState.Won
		if ended && !m.scoreSaved && m.gameState.Score > 0 {
			if m.store != nil {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Won)
			}
			m.scoreSaved = true
		}
		if !ended {
			// Restart cleared the ending; arm the save for the next run.
			m.scoreSaved = false
		}
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, snd *sound.Player, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, snd, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	_, err := p.Run()
	return err
}
