package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// envFlags maps environment variables to the flags they provide defaults for.
var envFlags = []struct {
	env  string
	flag string
}{
	{"ROPEJUMP_FPS", "fps"},
	{"ROPEJUMP_SCORES_DIR", "scores-dir"},
	{"ROPEJUMP_CONFIG", "config"},
	{"ROPEJUMP_DIFFICULTY", "difficulty"},
}

// applyEnv fills flags that were not set on the command line from the
// environment. Flags the command does not define are skipped.
func applyEnv(flags *pflag.FlagSet) error {
	for _, ef := range envFlags {
		value, ok := os.LookupEnv(ef.env)
		if !ok || value == "" {
			continue
		}
		f := flags.Lookup(ef.flag)
		if f == nil || f.Changed {
			continue
		}
		if err := flags.Set(ef.flag, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", ef.env, value, err)
		}
	}
	return nil
}
