package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ropejump/internal/config"
	"github.com/vovakirdan/tui-ropejump/internal/core"
	"github.com/vovakirdan/tui-ropejump/internal/games/ropejump"
	"github.com/vovakirdan/tui-ropejump/internal/platform/tui"
	"github.com/vovakirdan/tui-ropejump/internal/registry"
	"github.com/vovakirdan/tui-ropejump/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: ropejump).

Controls:
  Space/W/Up - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Rope starts at base speed and speeds up with the score
  normal - Rope starts 30% along the speed curve
  hard   - Rope starts 70% along the speed curve
  fixed  - No progression, even in rush mode

Examples:
  ropejump play
  ropejump play ropejump_rush
  ropejump play --difficulty hard
  ropejump play --config ./my-ropejump.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that starts a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := ropejump.ModeClassic.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'ropejump list' to see available modes", gameID)
	}

	if err := configureGames(); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	return playOnce(gameID, store, runtimeConfig())
}

// configureGames checks the config and difficulty flags and hands them to
// the game package before any game is created.
func configureGames() error {
	if flagConfig != "" {
		if _, err := config.LoadRopeJump(flagConfig); err != nil {
			return err
		}
	}
	if err := ropejump.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	ropejump.SetConfigPath(flagConfig)
	return nil
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score directory. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagScoresDir)
	if err != nil {
		logger.Warn("could not open score directory, scores will not be saved", "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close score store", "error", err)
	}
}

// playOnce runs a single mode until the player quits and logs the outcome.
func playOnce(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	res, err := tui.Run(game, store, cfg)
	reportResult(res)
	if err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// reportResult logs a finished session once the terminal is restored.
func reportResult(res tui.Result) {
	for _, path := range res.Shots {
		logger.Info("screenshot saved", "path", path)
	}
	if res.SaveErr != nil {
		logger.Warn("could not update high score", "mode", res.GameID, "error", res.SaveErr)
	}
	if res.Games == 0 {
		logger.Debug("no game finished", "mode", res.GameID)
		return
	}

	logger.Info("session over",
		"mode", res.GameID,
		"games", res.Games,
		"last", res.LastScore,
		"best", res.Best,
	)
	if res.NewBest {
		logger.Info("new best score", "mode", res.GameID, "best", res.Best)
	}
}
