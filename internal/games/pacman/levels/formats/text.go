package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseText parses the plain text level format:
//
//	width height
//	height rows of width integers, 1 for open floor and anything else for wall
//	kind x y        (one spawn per line, kind is pacman, ghost or pellet)
//
// Blank lines are skipped. Lines starting with '#' are comments, except
// "# name: ..." which sets the level name.
//
// Problems with the header or the tile rows reject the file. A bad spawn
// line is skipped and recorded in Warnings.
func ParseText(data []byte) (Level, error) {
	var lvl Level

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "#") {
				if name, ok := nameDirective(line); ok {
					lvl.Name = name
				}
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return Level{}, fmt.Errorf("%w: missing size line", ErrMalformed)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return Level{}, fmt.Errorf("%w: line %d: size line needs width and height, got %q", ErrMalformed, lineNo, header)
	}
	w, errW := strconv.Atoi(fields[0])
	h, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil || w < 1 || h < 1 {
		return Level{}, fmt.Errorf("%w: line %d: bad size %q", ErrMalformed, lineNo, header)
	}
	lvl.Width, lvl.Height = w, h

	lvl.Open = make([][]bool, h)
	for y := 0; y < h; y++ {
		line, ok := next()
		if !ok {
			return Level{}, fmt.Errorf("%w: expected %d rows, found %d", ErrMalformed, h, y)
		}
		cells := strings.Fields(line)
		if len(cells) != w {
			return Level{}, fmt.Errorf("%w: line %d: row %d has %d cells, expected %d", ErrMalformed, lineNo, y, len(cells), w)
		}
		row := make([]bool, w)
		for x, c := range cells {
			v, err := strconv.Atoi(c)
			if err != nil {
				return Level{}, fmt.Errorf("%w: line %d: cell %d: %q is not a number", ErrMalformed, lineNo, x, c)
			}
			row[x] = v == 1
		}
		lvl.Open[y] = row
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			lvl.warnf("line %d: spawn needs kind x y, got %q", lineNo, line)
			continue
		}
		kind, ok := ParseKind(fields[0])
		if !ok {
			lvl.warnf("line %d: unknown kind %q ignored", lineNo, fields[0])
			continue
		}
		x, errX := parseCoord(fields[1])
		y, errY := parseCoord(fields[2])
		if errX != nil || errY != nil {
			lvl.warnf("line %d: bad coordinates in %q", lineNo, line)
			continue
		}
		lvl.Spawns = append(lvl.Spawns, spawn(kind, x, y))
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("reading level: %w", err)
	}

	return lvl, nil
}

func nameDirective(comment string) (string, bool) {
	body := strings.TrimSpace(strings.TrimPrefix(comment, "#"))
	rest, ok := strings.CutPrefix(body, "name:")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}
	return v, nil
}

func (l *Level) warnf(format string, args ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}
