package interpreter

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"go.uber.org/zap"

	"toyrobot/internal/robot"
)

// Program is a sequence of robot commands:
//
//	PLACE 1,2,EAST
//	MOVE
//	LEFT
//	REPORT
//
// Keywords are case-insensitive, commands may be separated by whitespace or
// ';', and '#' or '//' start a comment running to the end of the line.
type Program struct {
	Commands []*Command `parser:"( @@ ';'? )*"`
}

type Command struct {
	Pos lexer.Position

	Place  *Place `parser:"  @@"`
	Move   bool   `parser:"| @'MOVE'"`
	Left   bool   `parser:"| @'LEFT'"`
	Right  bool   `parser:"| @'RIGHT'"`
	Report bool   `parser:"| @'REPORT'"`
	Show   bool   `parser:"| @'SHOW'"`
}

// Place carries raw coordinates; range checks belong to the robot.
type Place struct {
	X      int     `parser:"'PLACE' @Int"`
	Y      int     `parser:"',' @Int"`
	Facing *string `parser:"( ',' @('NORTH'|'EAST'|'SOUTH'|'WEST') )?"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[,;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(commandLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Ident"),
)

func Parse(data string) (*Program, error) {
	return parser.ParseString("input", data)
}

// ParseFile reads and parses a command script from disk.
func ParseFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return parser.ParseBytes(path, data)
}

// Direction returns the heading to place with, north when none was given.
func (p *Place) Direction() robot.Direction {
	if p.Facing == nil {
		return robot.North
	}
	d, _ := robot.ParseDirection(*p.Facing)
	return d
}

func (p *Program) Exec(ctx *Context) error {
	for _, cmd := range p.Commands {
		if err := cmd.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Name is the canonical keyword of the command.
func (c *Command) Name() string {
	switch {
	case c.Place != nil:
		return "PLACE"
	case c.Move:
		return "MOVE"
	case c.Left:
		return "LEFT"
	case c.Right:
		return "RIGHT"
	case c.Report:
		return "REPORT"
	case c.Show:
		return "SHOW"
	}
	return ""
}

func (c *Command) Exec(ctx *Context) error {
	r := ctx.Robot
	wasPlaced := r.Placed()
	var status bool

	switch {
	case c.Place != nil:
		status = r.Place(c.Place.X, c.Place.Y, c.Place.Direction())
	case c.Move:
		status = r.Move()
	case c.Left:
		status = r.Left()
	case c.Right:
		status = r.Right()
	case c.Report:
		rep, ok := r.Report()
		status = ok
		if ok {
			if _, err := fmt.Fprintf(ctx.Out, "%s%s\n", ctx.ReportPrefix, rep); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	case c.Show:
		status = true
		if err := Render(ctx.Out, r); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	log := ctx.logger().With(zap.String("cmd", c.Name()), zap.Int("line", c.Pos.Line))
	if !wasPlaced && c.Place == nil && !c.Show {
		log.Debug("command ignored, robot not placed")
	} else {
		log.Debug("command", zap.Bool("status", status), zap.Stringer("robot", r))
	}

	if ctx.Show && !c.Show {
		if err := Render(ctx.Out, r); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	return nil
}
