package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toyrobot/internal/interpreter"
	"toyrobot/internal/robot"
)

var demoRuns = []struct {
	title  string
	script string
}{
	{"First Run", "PLACE 0,0,NORTH MOVE REPORT"},
	{"Second Run", "PLACE 0,0,NORTH LEFT REPORT"},
	{"Third Run", "PLACE 1,2,EAST MOVE MOVE LEFT MOVE REPORT"},
	{"Upper Boundary", "PLACE 3,3,EAST MOVE MOVE LEFT MOVE MOVE REPORT"},
	{"Lower Boundary", "PLACE 1,1,SOUTH MOVE MOVE RIGHT MOVE MOVE REPORT"},
	{"Before Placement", "MOVE LEFT MOVE RIGHT MOVE PLACE 2,2,NORTH REPORT"},
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample command sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, run := range demoRuns {
				prog, err := interpreter.Parse(run.script)
				if err != nil {
					return fmt.Errorf("%s: %w", run.title, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", run.title, run.script)
				if err := prog.Exec(a.newContext(cmd, robot.New())); err != nil {
					return fmt.Errorf("%s: %w", run.title, err)
				}
			}
			return nil
		},
	}
}
