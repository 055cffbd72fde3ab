// Package robot tracks a single toy robot on a 5x5 table.
//
// Invalid input never produces an error. Out-of-range coordinates and
// headings are dropped field by field, and every command other than Place is
// ignored until the robot has been placed.
package robot

import "fmt"

// Robot holds position, heading and placement status.
type Robot struct {
	x, y    int
	heading Direction
	placed  bool
}

// Report is the observable state of a placed robot.
type Report struct {
	X      int
	Y      int
	Facing string
}

func (r Report) String() string {
	return fmt.Sprintf("%d,%d,%s", r.X, r.Y, r.Facing)
}

// New returns an unplaced robot at 0,0 facing north.
func New() *Robot {
	return &Robot{heading: North}
}

// Place puts the robot on the table. Each of x, y and heading is applied only
// if valid on its own; a rejected field keeps its previous value. The robot
// counts as placed afterwards regardless.
//
// Place always returns false.
func (r *Robot) Place(x, y int, heading Direction) bool {
	r.setX(x)
	r.setY(y)
	r.setHeading(heading)
	r.placed = true
	return false
}

// Left turns the robot a quarter turn counter-clockwise.
func (r *Robot) Left() bool {
	if !r.placed {
		return false
	}
	r.setHeading(r.heading - quarter)
	return true
}

// Right turns the robot a quarter turn clockwise. It reports false even when
// the turn happened.
func (r *Robot) Right() bool {
	if !r.placed {
		return false
	}
	r.setHeading(r.heading + quarter)
	return false
}

// Move advances one cell in the current heading. A step off the table leaves
// the robot where it is but still reports true: the result says a move was
// attempted, not that it took effect.
func (r *Robot) Move() bool {
	if !r.placed {
		return false
	}
	switch r.heading {
	case North:
		r.setY(r.y + 1)
	case South:
		r.setY(r.y - 1)
	case East:
		r.setX(r.x + 1)
	case West:
		r.setX(r.x - 1)
	default:
		return false
	}
	return true
}

// Report returns the current state, or false if the robot is not placed.
func (r *Robot) Report() (Report, bool) {
	if !r.placed {
		return Report{}, false
	}
	return Report{X: r.x, Y: r.y, Facing: r.heading.String()}, true
}

// X is the current column. Meaningless until the robot is placed.
func (r *Robot) X() int { return r.x }

// Y is the current row. Meaningless until the robot is placed.
func (r *Robot) Y() int { return r.y }

// Heading is the direction the robot faces.
func (r *Robot) Heading() Direction { return r.heading }

// Placed reports whether Place has been called.
func (r *Robot) Placed() bool { return r.placed }

// String describes the robot for logs.
func (r *Robot) String() string {
	if !r.placed {
		return "unplaced"
	}
	return fmt.Sprintf("(%d,%d) %s", r.x, r.y, r.heading)
}

func (r *Robot) setX(x int) {
	if inRange(x) {
		r.x = x
	}
}

func (r *Robot) setY(y int) {
	if inRange(y) {
		r.y = y
	}
}

func (r *Robot) setHeading(d Direction) {
	if n, ok := normalize(d); ok {
		r.heading = n
	}
}
