package geometry

import (
	"fmt"
	"strings"
)

// Direction is the side of the anchor the tooltip body is placed on.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the flip pair of d (Up↔Down, Left↔Right).
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Horizontal reports whether d places the tooltip beside the anchor
// rather than above or below it.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection maps a config string to a Direction. Empty input
// resolves to the default direction (up).
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirUp, fmt.Errorf("unknown direction: %q", raw)
	}
}
