package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ropejump/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game config",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config as YAML",
	Long: `Prints the config a game would start with: the first config found
(--config, ~/.ropejump/configs/ropejump.yaml, ./configs/ropejump.yaml or the
built-in defaults) with the difficulty preset applied.

Examples:
  ropejump config dump > ~/.ropejump/configs/ropejump.yaml
  ropejump config dump --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	addGameFlags(configDumpCmd)
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadRopeJump(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
