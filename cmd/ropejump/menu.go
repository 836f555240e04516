package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ropejump/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start interactive mode picker",
	Long: `Opens a menu listing every mode with its best score.
After a game you return to the menu.

Controls:
  Up/Down or K/J - Navigate
  Enter          - Play
  Q/Esc          - Quit`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	if err := configureGames(); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		if err := playOnce(result.GameID, store, cfg); err != nil {
			return err
		}
	}
}
