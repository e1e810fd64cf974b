package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sushi-bros/internal/core"
	"github.com/vovakirdan/sushi-bros/internal/registry"
	"github.com/vovakirdan/sushi-bros/internal/storage"
)

// Model is the Bubble Tea model that drives one game instance.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	latch      *InputLatch
	gameState  core.GameState
	palette    Palette
	logger     *log.Logger
	sink       CueSink
	settingKey string
	shotDir    string
	quitting   bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for session events and persistence warnings.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCueSink sets where sound cues are forwarded.
func WithCueSink(s CueSink) Option {
	return func(m *Model) {
		if s != nil {
			m.sink = s
		}
	}
}

// WithPalette sets the renderer palette (per SSH session).
func WithPalette(p Palette) Option {
	return func(m *Model) {
		m.palette = p
	}
}

// WithSettingKey sets the settings key the control mode is saved under.
func WithSettingKey(key string) Option {
	return func(m *Model) {
		if key != "" {
			m.settingKey = key
		}
	}
}

// WithScreenshotDir sets where ctrl+s dumps are written.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case nothing is persisted.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		latch:      NewInputLatch(),
		palette:    NewPalette(nil),
		logger:     log.New(io.Discard),
		sink:       NopSink{},
		settingKey: storage.SettingControlMode,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// SeedFromStore fills the persisted high score and control mode into cfg.
// Read failures leave the defaults in place.
func SeedFromStore(store *storage.Store, gameID, settingKey string, cfg core.RuntimeConfig, logger *log.Logger) core.RuntimeConfig {
	if store == nil {
		return cfg
	}
	cfg.HighScore = store.HighScore(gameID)
	mode, err := store.Setting(settingKey)
	if err != nil {
		if logger != nil {
			logger.Warn("cannot load control mode", "err", err)
		}
		return cfg
	}
	cfg.ControlMode = mode
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action == core.ActionPause {
		m.latch.Release()
	}
	m.latch.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.latch.Next())
	m.gameState = result.State

	for _, c := range result.Cues {
		m.sink.Play(c)
	}
	m.persist(prev, m.gameState)

	return m, tickCmd(m.config.TickRate)
}

// persist writes scores and preferences on state edges.
func (m Model) persist(prev, cur core.GameState) {
	id := m.game.ID()

	if cur.GameOver && !prev.GameOver {
		m.logger.Info("run ended", "game", id, "score", cur.Score, "level", cur.Level)
		if m.store != nil && cur.Score > 0 {
			if _, err := m.store.SaveScore(id, cur.Score, cur.Level); err != nil {
				m.logger.Warn("cannot save score", "err", err)
			}
		}
		m.updateHighScore(id, cur.Score)
	}

	if cur.LevelComplete && !prev.LevelComplete {
		m.logger.Info("level complete", "game", id, "level", cur.Level, "score", cur.Score)
		m.updateHighScore(id, cur.Score)
	}

	if prev.ControlMode != "" && cur.ControlMode != prev.ControlMode {
		m.logger.Debug("control mode changed", "mode", cur.ControlMode)
		if m.store != nil {
			if err := m.store.SetSetting(m.settingKey, cur.ControlMode); err != nil {
				m.logger.Warn("cannot save control mode", "err", err)
			}
		}
	}
}

func (m Model) updateHighScore(id string, score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.UpdateHighScore(id, score); err != nil {
		m.logger.Warn("cannot update high score", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".sushibros", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
