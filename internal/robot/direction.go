package robot

import "strings"

// Direction is a heading expressed in degrees clockwise from north.
type Direction int

const (
	North Direction = 0
	East  Direction = 90
	South Direction = 180
	West  Direction = 270
)

// quarter turn in degrees
const quarter = 90

// String returns the canonical heading name. Anything that is not exactly
// East, South or West reads as NORTH.
func (d Direction) String() string {
	switch d {
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	default:
		return "NORTH"
	}
}

// ParseDirection maps a heading name (any case) to its Direction.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NORTH":
		return North, true
	case "EAST":
		return East, true
	case "SOUTH":
		return South, true
	case "WEST":
		return West, true
	}
	return North, false
}

// normalize reports whether d is a whole number of quarter turns and, if so,
// folds it into [0, 360).
func normalize(d Direction) (Direction, bool) {
	if d%quarter != 0 {
		return d, false
	}
	d %= 360
	if d < 0 {
		d += 360
	}
	return d, true
}
