package engine

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Rand is the random source used by ghost steering. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Decision records which rule picked a ghost's next facing.
type Decision int

const (
	// DecisionForced means only one direction was left (including a reversal at a dead end).
	DecisionForced Decision = iota
	// DecisionRandom means the facing was drawn uniformly from the open directions.
	DecisionRandom
	// DecisionChase means the facing was the one closing the most distance to the target.
	DecisionChase
	// DecisionBlocked means no direction was open at all; the facing is kept.
	DecisionBlocked
)

// String returns the string representation of a decision.
func (d Decision) String() string {
	switch d {
	case DecisionForced:
		return "forced"
	case DecisionRandom:
		return "random"
	case DecisionChase:
		return "chase"
	case DecisionBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// GhostStep reports what a ghost did during one tick.
type GhostStep struct {
	GhostID  int
	HitWall  bool
	Decision Decision
	Facing   Direction // facing for the next tick
}

// GhostController holds the steering state of one ghost.
// Facing is the direction the next move is attempted in; TargetX/TargetY is the
// last player position reported to the ghost.
type GhostController struct {
	Facing           Direction
	TargetX, TargetY float64
}

// SetTarget records the most recent player position.
func (c *GhostController) SetTarget(x, y float64) {
	c.TargetX = x
	c.TargetY = y
}

// Step moves the body one speed step along Facing, then chooses the facing for
// the next tick.
//
// Turn candidates are probed from the position reached by this tick's move.
// While the ghost can keep going it never reverses; after hitting a wall it may
// turn back. With several open directions it picks at random half of the time
// and otherwise heads for the direction that ends closest to the target.
func (c *GhostController) Step(g *Grid, body *Body, speed float64, rng Rand) GhostStep {
	if !c.Facing.Valid() {
		c.Facing = DirUp
	}

	dx, dy := c.Facing.Scaled(speed)
	hitWall := !body.Move(g, dx, dy)

	open := mapset.New[Direction]()
	for _, d := range Directions {
		px, py := d.Scaled(speed)
		if CouldMoveTo(g, body.Size, body.X+px, body.Y+py) {
			open.Put(d)
		}
	}

	if hitWall && open.Size() == 0 {
		// Sealed in: reversing is no better than waiting.
		return GhostStep{HitWall: true, Decision: DecisionBlocked, Facing: c.Facing}
	}

	opposite := c.Facing.Opposite()
	if hitWall {
		open.Remove(c.Facing)
		open.Put(opposite)
	} else {
		open.Put(c.Facing)
		open.Remove(opposite)
	}

	if open.Size() == 1 || (open.Size() == 2 && open.Has(opposite)) {
		if open.Size() == 2 {
			open.Remove(opposite)
		}
		c.Facing = ordered(open)[0]
		return GhostStep{HitWall: hitWall, Decision: DecisionForced, Facing: c.Facing}
	}

	open.Remove(opposite)
	choices := ordered(open)
	if len(choices) == 0 {
		return GhostStep{HitWall: hitWall, Decision: DecisionBlocked, Facing: c.Facing}
	}

	if rng.Intn(2) == 0 {
		c.Facing = choices[rng.Intn(len(choices))]
		return GhostStep{HitWall: hitWall, Decision: DecisionRandom, Facing: c.Facing}
	}

	c.Facing = c.closest(choices, body.X, body.Y, speed)
	return GhostStep{HitWall: hitWall, Decision: DecisionChase, Facing: c.Facing}
}

// closest returns the choice whose one-step position is nearest the target.
// Ties go to the earlier direction in enumeration order.
func (c *GhostController) closest(choices []Direction, x, y, speed float64) Direction {
	best := choices[0]
	bestDist := math.MaxFloat64
	for _, d := range choices {
		dx, dy := d.Scaled(speed)
		dist := math.Hypot(x+dx-c.TargetX, y+dy-c.TargetY)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// ordered lists the members of set in enumeration order.
func ordered(set mapset.Set[Direction]) []Direction {
	out := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if set.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
