package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse journaled runs",
	Long: `Shows recent runs, newest first. In the interactive view, Enter plays
the selected run back.

Examples:
  pacman runs
  pacman runs --plain --limit 5
  pacman runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every journaled run")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		logger.Info("run journal cleared", "db", flagDBPath)
		return nil
	case flagPlain:
		return printRuns(store)
	}

	width, height := terminalSize()
	id, err := tui.RunRunsBoard(store, width, height)
	if err != nil || id == 0 {
		return err
	}

	run, err := store.Run(id)
	if err != nil {
		return err
	}
	opts, err := replayOptions(run)
	if err != nil {
		return err
	}
	return watchRun(run, opts)
}

func printRuns(store *storage.Store) error {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pacman play' to start one!")
		return nil
	}

	fmt.Printf("  %-5s  %-14s  %-7s  %-7s  %-7s  %s\n", "ID", "Level", "Score", "Ticks", "Outcome", "Date")
	fmt.Printf("  %-5s  %-14s  %-7s  %-7s  %-7s  %s\n", "--", "-----", "-----", "-----", "-------", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-14s  %-7d  %-7d  %-7s  %s\n",
			r.ID, r.Level, r.Score, r.Ticks, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
