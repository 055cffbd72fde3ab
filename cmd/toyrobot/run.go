package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"toyrobot/internal/interpreter"
	"toyrobot/internal/robot"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script...]",
		Short: "Execute command scripts against one robot",
		Long: `Executes each script in order against the same robot.
With no arguments, or "-", commands are read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			ctx := a.newContext(cmd, robot.New())
			for _, path := range args {
				prog, err := a.load(cmd, path)
				if err != nil {
					return err
				}
				a.logger.Debug("executing script", zap.String("path", path), zap.Int("commands", len(prog.Commands)))
				if err := prog.Exec(ctx); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}
}

func (a *app) load(cmd *cobra.Command, path string) (*interpreter.Program, error) {
	if path != "-" {
		return interpreter.ParseFile(path)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return interpreter.Parse(string(data))
}
