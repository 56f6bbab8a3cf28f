// pacman is a terminal Pac-Man with a run journal and deterministic replays.
//
// Usage:
//
//	pacman play              - Play, starting on the first level
//	pacman levels            - List available levels
//	pacman runs              - Browse journaled runs
//	pacman replay <id>       - Re-simulate or watch a journaled run
//
// Global flags:
//
//	--db <path>        - Run journal database (default: ~/.pacman/runs.db)
//	--levels <dir>     - Load levels from a directory instead of the built-in pack
//	--config <path>    - Custom game config YAML
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath    string
	flagLevelsDir string
	flagConfig    string
	flagLogLevel  string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "pacman",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A terminal Pac-Man. Every run is journaled with its seed and inputs,
so it can be replayed exactly.

Examples:
  pacman play
  pacman play --pick --difficulty hard
  pacman levels --levels ./my-levels
  pacman runs
  pacman replay 12 --watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacman/runs.db", "Path to the run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}
