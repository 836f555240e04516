package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ropejump/internal/registry"
	"github.com/vovakirdan/tui-ropejump/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best scores",
	Long: `Display the best score of one mode, or of every mode when none is given.

Examples:
  ropejump scores
  ropejump scores ropejump_rush
  ropejump scores ropejump --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the recorded best score")
}

func runScores(cmd *cobra.Command, args []string) error {
	games := registry.List()
	if len(args) > 0 {
		games = slices.DeleteFunc(games, func(g registry.GameInfo) bool {
			return g.ID != args[0]
		})
		if len(games) == 0 {
			return fmt.Errorf("unknown mode %q, run 'ropejump list' to see available modes", args[0])
		}
	}

	store, err := storage.Open(flagScoresDir)
	if err != nil {
		return err
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()
	if flagReset {
		for _, g := range games {
			if err := store.ClearScore(g.ID); err != nil {
				return err
			}
			logger.Info("best score cleared", "mode", g.ID)
		}
		return nil
	}

	fmt.Fprintln(out, "Best Scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-14s  %-10s  %s\n", "ID", "Title", "Best")
	fmt.Fprintf(out, "  %-14s  %-10s  %s\n", "--", "-----", "----")

	for _, g := range games {
		best, err := store.HighScore(g.ID)
		if err != nil {
			logger.Warn("unreadable score file", "mode", g.ID, "error", err)
			continue
		}
		fmt.Fprintf(out, "  %-14s  %-10s  %d\n", g.ID, g.Title, best)
	}
	return nil
}
