package engine

import "math"

// Kind identifies the variant of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindGhost
	KindPellet
)

// String returns the level-file keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "pacman"
	case KindGhost:
		return "ghost"
	case KindPellet:
		return "pellet"
	default:
		return "unknown"
	}
}

// Body is the axis-aligned bounding square of an entity.
// X and Y are the top-left corner in tile units; Size is the side length.
type Body struct {
	X, Y float64
	Size float64
}

// Center returns the middle of the bounding square.
func (b Body) Center() (float64, float64) {
	return b.X + b.Size/2, b.Y + b.Size/2
}

// Move resolves the displacement (dx, dy) against the grid and commits it.
// It returns false when the full displacement could not be applied.
func (b *Body) Move(g *Grid, dx, dy float64) bool {
	adx, ady, full := Resolve(g, *b, dx, dy)
	b.X += adx
	b.Y += ady
	return full
}

// Tile returns the tile containing the body's center.
func (b Body) Tile() (int, int) {
	cx, cy := b.Center()
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// Entity is the capability set shared by players, ghosts and pellets.
type Entity interface {
	Kind() Kind
	Bounds() Body
}

// Spawn is one entity placement from a level definition.
type Spawn struct {
	Kind Kind
	X, Y float64
}

// Player is the user-controlled character.
type Player struct {
	Body
	Facing Direction
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

// Bounds implements Entity.
func (p *Player) Bounds() Body { return p.Body }

// Ghost is an adversary steered by its controller.
type Ghost struct {
	ID int
	Body
	AI GhostController

	spawnX, spawnY float64
}

// Kind implements Entity.
func (g *Ghost) Kind() Kind { return KindGhost }

// Bounds implements Entity.
func (g *Ghost) Bounds() Body { return g.Body }

// Pellet is a stationary pickup. IDs follow spawn order and are stable for a level.
type Pellet struct {
	ID int
	Body
}

// Kind implements Entity.
func (p *Pellet) Kind() Kind { return KindPellet }

// Bounds implements Entity.
func (p *Pellet) Bounds() Body { return p.Body }

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Ghost)(nil)
	_ Entity = (*Pellet)(nil)
)
