package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled run",
	Long: `Runs a journaled run again from its seed and recorded inputs and checks
that it ends with the same score and tick count.

Runs played with --levels need the same --levels to replay.

Examples:
  pacman replay 3
  pacman replay 3 --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the run back in the terminal")
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Run(id)
	if err != nil {
		return err
	}
	opts, err := replayOptions(run)
	if err != nil {
		return err
	}

	if flagWatch {
		return watchRun(run, opts)
	}

	res, err := pacman.Replay(opts, run.Seed, run.Level, run.Inputs)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d  level %s  seed %d  %d inputs\n", run.ID, run.Level, run.Seed, len(run.Inputs))
	fmt.Printf("  journal: score %d  ticks %d  %s\n", run.Score, run.Ticks, run.Outcome)
	fmt.Printf("  replay:  score %d  ticks %d  %s\n", res.Score, res.Ticks, res.Outcome)

	if res.Score != run.Score || int64(res.Ticks) != run.Ticks {
		return fmt.Errorf("replay of run %d diverged from the journal", run.ID)
	}
	fmt.Println("  replay matches the journal")
	return nil
}

// replayOptions rebuilds the game options a run was played with.
func replayOptions(run *storage.Run) (pacman.Options, error) {
	cfg := config.DefaultPacmanConfig()
	if run.Config != "" {
		var err error
		cfg, err = config.ParsePacman([]byte(run.Config))
		if err != nil {
			return pacman.Options{}, fmt.Errorf("run %d has an unusable config: %w", run.ID, err)
		}
	}

	lvls, err := loadLevels()
	if err != nil {
		return pacman.Options{}, err
	}
	if err := findLevel(lvls, run.Level); err != nil {
		return pacman.Options{}, err
	}
	return pacman.Options{Config: cfg, Levels: lvls}, nil
}

// watchRun plays a recorded run back in the TUI at its original tick rate.
func watchRun(run *storage.Run, opts pacman.Options) error {
	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: opts.Config.Gameplay.TickRate,
		Seed:     run.Seed,
		Level:    run.Level,
	}

	i := 0
	playback := func() (core.InputFrame, bool) {
		if i >= len(run.Inputs) {
			return core.InputFrame{}, false
		}
		in, err := pacman.FrameFor(run.Inputs[i])
		if err != nil {
			return core.InputFrame{}, false
		}
		i++
		return in, true
	}

	tuiLogger, closeLog := fileLogger()
	defer closeLog()

	return tui.Run(pacman.New(opts), rc, tui.Options{
		Logger:   tuiLogger,
		Playback: playback,
	})
}
