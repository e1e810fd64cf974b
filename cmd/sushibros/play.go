package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sushi-bros/internal/config"
	"github.com/vovakirdan/sushi-bros/internal/core"
	"github.com/vovakirdan/sushi-bros/internal/games/sushi"
	"github.com/vovakirdan/sushi-bros/internal/platform/tui"
	"github.com/vovakirdan/sushi-bros/internal/registry"
	"github.com/vovakirdan/sushi-bros/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagBell       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Sushi Bros run.

Controls:
  Arrows/WASD  - Move (spin mode: left/right turn, up/down forward/back)
  Space/J      - Throw sushi
  K/X          - Swing the pole
  Enter        - Start from the menu
  C            - Toggle control mode (direction / spin)
  P/Esc        - Pause
  R            - Restart (after game over / victory)
  B            - Back to menu (after game over / victory)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, more power-ups
  normal - Default tuning
  hard   - 2 lives, shorter invulnerability
  fixed  - No difficulty progression

Examples:
  sushibros play
  sushibros play --difficulty easy
  sushibros play --level 3
  sushibros play --config ./my-sushi.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	cmd.Flags().BoolVar(&flagBell, "bell", true, "Ring the terminal bell on big events")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// validatePlayFlags checks the play flags before the alt screen hides errors.
func validatePlayFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
	}
	if flagLevel < 1 || flagLevel > len(sushi.Levels) {
		return fmt.Errorf("--level must be between 1 and %d", len(sushi.Levels))
	}
	if flagConfig != "" {
		if _, err := config.LoadSushi(flagConfig); err != nil {
			return err
		}
	}
	return nil
}

func play() error {
	if err := validatePlayFlags(); err != nil {
		return err
	}
	return withFileLogger(func(logger *log.Logger) error {
		sushi.SetConfigPath(flagConfig)
		sushi.SetDifficultyPreset(flagDifficulty)
		sushi.SetStartLevel(flagLevel - 1)

		game, err := registry.Create(sushi.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}

		cfg := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("running without persistence", "err", err)
			store = nil
		} else {
			store.SetLogger(logger)
			defer store.Close()
		}
		cfg = tui.SeedFromStore(store, game.ID(), storage.SettingControlMode, cfg, logger)

		sinks := tui.MultiSink{tui.NewLogSink(logger)}
		if flagBell {
			sinks = append(sinks, tui.NewBellSink(os.Stdout))
		}

		if err := tui.Run(game, store, cfg,
			tui.WithLogger(logger),
			tui.WithCueSink(sinks),
		); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	})
}
