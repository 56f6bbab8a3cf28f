package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"gopkg.in/yaml.v3"
)

// YAMLLevel is the YAML form of a level: the maze is drawn as ASCII rows.
//
//	'#'  wall
//	'.'  floor with a pellet
//	' '  floor
//	'P'  floor with the pacman spawn
//	'G'  floor with a ghost spawn
//
// Extra spawns with fractional coordinates may be listed under spawns.
type YAMLLevel struct {
	Name   string      `yaml:"name"`
	Rows   []string    `yaml:"rows"`
	Spawns []YAMLSpawn `yaml:"spawns,omitempty"`
}

// YAMLSpawn is one explicit spawn.
type YAMLSpawn struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// ParseYAML parses a YAML level file.
// Spawns drawn in the rows are centered on their tile using the default sizes.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Rows) == 0 || len(yl.Rows[0]) == 0 {
		return Level{}, fmt.Errorf("%w: no rows", ErrMalformed)
	}

	lvl := Level{
		Name:   yl.Name,
		Width:  len(yl.Rows[0]),
		Height: len(yl.Rows),
		Open:   make([][]bool, len(yl.Rows)),
	}

	p := engine.DefaultParams()
	for y, row := range yl.Rows {
		if len(row) != lvl.Width {
			return Level{}, fmt.Errorf("%w: row %d is %d wide, expected %d", ErrMalformed, y, len(row), lvl.Width)
		}
		lvl.Open[y] = make([]bool, lvl.Width)
		for x := 0; x < len(row); x++ {
			ch := row[x]
			lvl.Open[y][x] = ch != '#'
			switch ch {
			case '#', ' ':
			case '.':
				lvl.Spawns = append(lvl.Spawns, centered(engine.KindPellet, x, y, p.PelletSize))
			case 'P':
				lvl.Spawns = append(lvl.Spawns, centered(engine.KindPlayer, x, y, p.PlayerSize))
			case 'G':
				lvl.Spawns = append(lvl.Spawns, centered(engine.KindGhost, x, y, p.GhostSize))
			default:
				lvl.warnf("row %d col %d: unknown symbol %q read as floor", y, x, ch)
			}
		}
	}

	for i, s := range yl.Spawns {
		kind, ok := ParseKind(s.Kind)
		if !ok {
			lvl.warnf("spawns[%d]: unknown kind %q ignored", i, s.Kind)
			continue
		}
		lvl.Spawns = append(lvl.Spawns, spawn(kind, s.X, s.Y))
	}

	return lvl, nil
}

func centered(kind engine.Kind, x, y int, size float64) engine.Spawn {
	off := (1 - size) / 2
	return spawn(kind, float64(x)+off, float64(y)+off)
}
