package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ReplayResult is the state a recorded run ends in.
type ReplayResult struct {
	Score    int
	Ticks    uint64
	Outcome  string
	Snapshot Snapshot
}

// Replay re-simulates a recorded run without a terminal. The same options,
// seed, start level and inputs always produce the same result.
func Replay(opts Options, seed int64, level string, inputs string) (ReplayResult, error) {
	g := New(opts)
	g.Reset(core.RuntimeConfig{Seed: seed, Level: level})

	for i := 0; i < len(inputs); i++ {
		in, err := FrameFor(inputs[i])
		if err != nil {
			return ReplayResult{}, err
		}
		g.Step(in)
	}
	if err := g.Err(); err != nil {
		return ReplayResult{}, err
	}

	return ReplayResult{
		Score:    g.State().Score,
		Ticks:    g.Ticks(),
		Outcome:  g.Outcome(),
		Snapshot: g.Snapshot(),
	}, nil
}
