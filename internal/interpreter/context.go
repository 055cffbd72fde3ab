package interpreter

import (
	"io"

	"go.uber.org/zap"

	"toyrobot/internal/robot"
)

// DefaultReportPrefix precedes every REPORT line.
const DefaultReportPrefix = "Output: "

// Context stores the robot and where its output goes.

type Context struct {
	Robot *robot.Robot
	Out   io.Writer
	Log   *zap.Logger

	// Show renders the table after every command.
	Show         bool
	ReportPrefix string
}

func NewContext(r *robot.Robot, out io.Writer) *Context {
	return &Context{Robot: r, Out: out, Log: zap.NewNop(), ReportPrefix: DefaultReportPrefix}
}

func (c *Context) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}
