package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, rng Rand, rows []string, spawns ...Spawn) *Session {
	t.Helper()
	if rng == nil {
		rng = &scriptedRand{}
	}
	s := NewSession(DefaultParams(), rng)
	s.ResetLevel(gridOf(t, rows...), spawns)
	return s
}

func TestSessionPelletPickup(t *testing.T) {
	s := newTestSession(t, nil, []string{"......"},
		Spawn{Kind: KindPlayer, X: 0, Y: 0},
		Spawn{Kind: KindPellet, X: 1.25, Y: 0.3},
		Spawn{Kind: KindPellet, X: 4.3, Y: 0.3},
	)

	var report TickReport
	for i := 0; i < 4; i++ {
		report = s.Tick(DirRight)
		require.Empty(t, report.Consumed, "tick %d", report.Tick)
		require.Equal(t, 2, report.PelletsLeft)
	}

	report = s.Tick(DirRight)
	assert.Equal(t, uint64(5), report.Tick)
	assert.Equal(t, []int{0}, report.Consumed)
	assert.Equal(t, 10, report.ScoreDelta)
	assert.Equal(t, 1, report.PelletsLeft)
	assert.Equal(t, 10, s.Score())
	require.Len(t, s.Pellets(), 1)
	assert.Equal(t, 1, s.Pellets()[0].ID)
	assert.False(t, s.Cleared())

	for i := 0; i < 40 && !s.Cleared(); i++ {
		report = s.Tick(DirRight)
	}
	assert.True(t, s.Cleared())
	assert.Equal(t, 20, s.Score())
	assert.Equal(t, 0, report.PelletsLeft)
}

func TestSessionGhostCatchesPlayer(t *testing.T) {
	// Always chase.
	s := newTestSession(t, &scriptedRand{vals: []int{1}}, []string{"......."},
		Spawn{Kind: KindPlayer, X: 0, Y: 0},
		Spawn{Kind: KindGhost, X: 3, Y: 0},
		Spawn{Kind: KindGhost, X: 3, Y: 0},
	)

	var report TickReport
	for i := 0; i < 30; i++ {
		report = s.Tick(DirRight)
		if report.Caught {
			break
		}
	}
	require.True(t, report.Caught, "ghosts never reached the player")
	assert.Equal(t, 0, report.CaughtBy, "first ghost in order wins")
	assert.Less(t, report.Tick, uint64(30))
}

func TestSessionWithoutPlayer(t *testing.T) {
	s := newTestSession(t, nil, []string{"....", "...."},
		Spawn{Kind: KindGhost, X: 0, Y: 0},
		Spawn{Kind: KindPellet, X: 0.4, Y: 0.4},
	)

	report := s.Tick(DirRight)
	assert.Nil(t, s.Player())
	assert.False(t, report.Caught)
	assert.Empty(t, report.Consumed)
	assert.Equal(t, 1, report.PelletsLeft)
	assert.Len(t, report.Ghosts, 1)
	assert.True(t, report.PlayerFull)
	assert.False(t, s.Snapshot().HasPlayer)
}

func TestSessionEmptyLevel(t *testing.T) {
	s := newTestSession(t, nil, []string{".."})

	report := s.Tick(DirLeft)
	assert.Equal(t, uint64(1), report.Tick)
	assert.Equal(t, 0, report.PelletsLeft)
	assert.Empty(t, report.Ghosts)
	assert.True(t, s.Cleared())
}

func TestSessionTickBeforeReset(t *testing.T) {
	s := NewSession(DefaultParams(), &scriptedRand{})

	report := s.Tick(DirUp)
	assert.Equal(t, TickReport{}, report)
	assert.Equal(t, uint64(0), s.Ticks())
	assert.False(t, s.Cleared())
}

func TestSessionGhostReportOrder(t *testing.T) {
	s := newTestSession(t, nil, []string{".....", ".....", "....."},
		Spawn{Kind: KindGhost, X: 4, Y: 2},
		Spawn{Kind: KindPellet, X: 2, Y: 2},
		Spawn{Kind: KindGhost, X: 0, Y: 0},
		Spawn{Kind: KindGhost, X: 2, Y: 1},
	)

	report := s.Tick(DirNone)
	require.Len(t, report.Ghosts, 3)
	for i, step := range report.Ghosts {
		assert.Equal(t, i, step.GhostID)
		assert.Equal(t, i, s.Ghosts()[i].ID)
	}
}

func TestSessionPlayerFacing(t *testing.T) {
	s := newTestSession(t, nil, []string{"...", "#.."},
		Spawn{Kind: KindPlayer, X: 0, Y: 0.2},
	)
	require.NotNil(t, s.Player())
	assert.Equal(t, DirRight, s.Player().Facing)

	report := s.Tick(DirDown)
	assert.False(t, report.PlayerFull, "wall below should cut the move short")
	assert.Equal(t, DirDown, s.Player().Facing)

	report = s.Tick(DirNone)
	assert.True(t, report.PlayerFull)
	assert.Equal(t, DirDown, s.Player().Facing, "no input keeps the facing")

	x := s.Player().X
	report = s.Tick(DirRight)
	assert.True(t, report.PlayerFull)
	assert.Equal(t, DirRight, s.Player().Facing)
	assert.InDelta(t, x+0.1, s.Player().X, 1e-9)
}

func TestSessionPlayerInsideWallDoesNotHang(t *testing.T) {
	s := newTestSession(t, nil, []string{".#."},
		Spawn{Kind: KindPlayer, X: 1, Y: 0},
	)

	report := s.Tick(DirRight)
	assert.False(t, report.PlayerFull)
	assert.Equal(t, 1.0, s.Player().X)
}

func TestSessionFirstPlayerSpawnWins(t *testing.T) {
	s := newTestSession(t, nil, []string{"....", "...."},
		Spawn{Kind: KindPlayer, X: 2, Y: 1},
		Spawn{Kind: KindPlayer, X: 0, Y: 0},
	)

	require.NotNil(t, s.Player())
	assert.Equal(t, 2.0, s.Player().X)
	assert.Equal(t, 1.0, s.Player().Y)
}

func TestSessionRespawnActors(t *testing.T) {
	s := newTestSession(t, &scriptedRand{vals: []int{0}}, []string{"......", "......"},
		Spawn{Kind: KindPlayer, X: 0, Y: 0},
		Spawn{Kind: KindGhost, X: 5, Y: 1},
		Spawn{Kind: KindPellet, X: 0.4, Y: 0.4},
		Spawn{Kind: KindPellet, X: 3.4, Y: 1.4},
	)

	for range 5 {
		s.Tick(DirDown)
	}
	require.Equal(t, 10, s.Score())

	s.RespawnActors()
	snap := s.Snapshot()
	assert.Equal(t, ActorState{X: 0, Y: 0, Facing: DirRight}, snap.Player)
	require.Len(t, snap.Ghosts, 1)
	assert.Equal(t, ActorState{X: 5, Y: 1, Facing: DirUp}, snap.Ghosts[0])
	assert.Equal(t, []int{1}, snap.Pellets)
	assert.Equal(t, 10, snap.Score)
	assert.Equal(t, uint64(5), snap.Tick)
}

func TestSessionScoreCarriesAcrossLevels(t *testing.T) {
	s := newTestSession(t, nil, []string{"..."},
		Spawn{Kind: KindPlayer, X: 0, Y: 0},
		Spawn{Kind: KindPellet, X: 0.3, Y: 0.3},
	)
	s.Tick(DirNone)
	require.Equal(t, 10, s.Score())

	s.ResetLevel(gridOf(t, "...."), []Spawn{
		{Kind: KindPlayer, X: 3, Y: 0},
		{Kind: KindPellet, X: 0.4, Y: 0.4},
	})
	assert.Equal(t, 10, s.Score())
	assert.Equal(t, uint64(1), s.Ticks())
	assert.Len(t, s.Pellets(), 1)
	assert.Equal(t, 0, s.Pellets()[0].ID)
}

func TestSessionSetParams(t *testing.T) {
	s := newTestSession(t, nil, []string{"....."},
		Spawn{Kind: KindPlayer, X: 0, Y: 0},
	)
	p := s.Params()
	p.PlayerSpeed = 0.5
	s.SetParams(p)

	s.Tick(DirRight)
	assert.InDelta(t, 0.5, s.Player().X, 1e-9)
	assert.Equal(t, 0.5, s.Params().PlayerSpeed)
}
