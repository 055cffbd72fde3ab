package interpreter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"toyrobot/internal/robot"
)

func run(t *testing.T, src string) (*robot.Robot, string) {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	var out bytes.Buffer
	r := robot.New()
	require.NoError(t, prog.Exec(NewContext(r, &out)))
	return r, out.String()
}

func TestParseCommands(t *testing.T) {
	prog, err := Parse("PLACE 1,2,EAST\nMOVE\nLEFT\nRIGHT\nREPORT\nSHOW")
	require.NoError(t, err)
	require.Len(t, prog.Commands, 6)

	names := make([]string, 0, len(prog.Commands))
	for _, c := range prog.Commands {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"PLACE", "MOVE", "LEFT", "RIGHT", "REPORT", "SHOW"}, names)

	place := prog.Commands[0].Place
	assert.Equal(t, 1, place.X)
	assert.Equal(t, 2, place.Y)
	assert.Equal(t, robot.East, place.Direction())
	assert.Equal(t, 2, prog.Commands[1].Pos.Line)
}

func TestParseCaseAndSeparators(t *testing.T) {
	prog, err := Parse("place 0,0,west; move;Report")
	require.NoError(t, err)
	require.Len(t, prog.Commands, 3)
	assert.Equal(t, robot.West, prog.Commands[0].Place.Direction())
}

func TestParseDefaultFacing(t *testing.T) {
	prog, err := Parse("PLACE 3,4")
	require.NoError(t, err)
	assert.Nil(t, prog.Commands[0].Place.Facing)
	assert.Equal(t, robot.North, prog.Commands[0].Place.Direction())
}

func TestParseComments(t *testing.T) {
	prog, err := Parse("# start in the corner\nPLACE 0,0,NORTH // facing up\nMOVE")
	require.NoError(t, err)
	assert.Len(t, prog.Commands, 2)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"JUMP",
		"PLACE 1",
		"PLACE 1,2,UP",
		"PLACE a,b,NORTH",
		"MOVE @",
	} {
		_, err := Parse(src)
		assert.Error(t, err, "source %q", src)
	}
}

func TestExecSampleRuns(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"move north", "PLACE 0,0,NORTH MOVE REPORT", "Output: 0,1,NORTH\n"},
		{"turn left", "PLACE 0,0,NORTH LEFT REPORT", "Output: 0,0,WEST\n"},
		{"mixed", "PLACE 1,2,EAST MOVE MOVE LEFT MOVE REPORT", "Output: 3,3,NORTH\n"},
		{"upper boundary", "PLACE 3,3,EAST MOVE MOVE LEFT MOVE MOVE REPORT", "Output: 4,4,NORTH\n"},
		{"lower boundary", "PLACE 1,1,SOUTH MOVE MOVE RIGHT MOVE MOVE REPORT", "Output: 0,0,WEST\n"},
		{"before place", "MOVE LEFT MOVE RIGHT MOVE PLACE 2,2,NORTH REPORT", "Output: 2,2,NORTH\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, out := run(t, tc.src)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestExecReportUnplacedPrintsNothing(t *testing.T) {
	r, out := run(t, "REPORT MOVE REPORT")
	assert.Empty(t, out)
	assert.False(t, r.Placed())
}

func TestExecNegativePlacePartialApply(t *testing.T) {
	_, out := run(t, "PLACE 2,3,EAST REPORT PLACE -1,1,SOUTH REPORT")
	assert.Equal(t, "Output: 2,3,EAST\nOutput: 2,1,SOUTH\n", out)
}

func TestExecShowAfterEveryCommand(t *testing.T) {
	prog, err := Parse("PLACE 0,0,NORTH MOVE")
	require.NoError(t, err)
	var out bytes.Buffer
	ctx := NewContext(robot.New(), &out)
	ctx.Show = true
	require.NoError(t, prog.Exec(ctx))
	assert.Equal(t, 10, strings.Count(out.String(), "\n"))
}

func TestExecLogsIgnoredCommands(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prog, err := Parse("MOVE PLACE 0,0 MOVE")
	require.NoError(t, err)
	ctx := NewContext(robot.New(), &bytes.Buffer{})
	ctx.Log = zap.New(core)
	require.NoError(t, prog.Exec(ctx))

	assert.Equal(t, 1, logs.FilterMessage("command ignored, robot not placed").Len())
	moves := logs.FilterMessage("command").FilterField(zap.String("cmd", "MOVE")).All()
	require.Len(t, moves, 1)
	assert.Equal(t, true, moves[0].ContextMap()["status"])
}

func TestExecCustomPrefix(t *testing.T) {
	prog, err := Parse("PLACE 4,4,WEST REPORT")
	require.NoError(t, err)
	var out bytes.Buffer
	ctx := NewContext(robot.New(), &out)
	ctx.ReportPrefix = ""
	require.NoError(t, prog.Exec(ctx))
	assert.Equal(t, "4,4,WEST\n", out.String())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.txt")
	require.NoError(t, os.WriteFile(path, []byte("PLACE 1,1,EAST\nMOVE\nREPORT\n"), 0o644))

	prog, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, prog.Commands, 3)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
