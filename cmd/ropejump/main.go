// ropejump is a terminal rope-jumping game.
//
// Usage:
//
//	ropejump list              - List available modes
//	ropejump play [mode]       - Play a mode (default: ropejump)
//	ropejump menu              - Pick modes interactively
//	ropejump scores [mode]     - Show best scores
//	ropejump config dump       - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible particles
//	--scores-dir <path>   - Set score directory (default: ~/.ropejump)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-ropejump/internal/games/ropejump"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagScoresDir string
	flagLogLevel  string

	logger = newLogger()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ropejump",
	Short: "Rope Jump - skip a swinging rope in your terminal",
	Long: `Rope Jump is a terminal game: the character swings a rope over its head
and under its feet, and you jump every time it comes down.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View best scores
  config   - Inspect the game config

Settings can also come from the environment or a .env file:
  ROPEJUMP_FPS, ROPEJUMP_SCORES_DIR, ROPEJUMP_CONFIG, ROPEJUMP_DIFFICULTY

Examples:
  ropejump play
  ropejump play ropejump_rush --difficulty hard
  ropejump menu
  ropejump scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoresDir, "scores-dir", "~/.ropejump", "Directory for high score files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup runs before every command: environment first, then logging.
func setup(cmd *cobra.Command, args []string) error {
	// A missing .env file is the normal case
	_ = godotenv.Load()

	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	return nil
}

// newLogger creates the CLI logger. It writes to stderr so it never mixes
// with command output.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ropejump",
	})
}
