package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"toyrobot/internal/config"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/logging"
	"toyrobot/internal/robot"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	show       bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "toyrobot",
		Short: "Toy robot on a 5x5 table",
		Long: `toyrobot drives a single robot around a 5x5 table.

Commands:
  PLACE X,Y[,F]  put the robot at X,Y facing F (NORTH, EAST, SOUTH, WEST)
  MOVE           step one cell forward
  LEFT, RIGHT    turn a quarter turn
  REPORT         print X,Y,F
  SHOW           draw the table

Commands issued before the first PLACE are ignored, as is any move that would
take the robot off the table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("show") {
				cfg.Display.Show = a.show
			}
			if a.verbose {
				cfg.Logging.Level = "debug"
			}
			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every command")
	rootCmd.PersistentFlags().BoolVar(&a.show, "show", false, "draw the table after every command")

	rootCmd.AddCommand(newRunCmd(a), newDemoCmd(a))
	return rootCmd
}

// newContext wires a robot to the command's output using the loaded config.
func (a *app) newContext(cmd *cobra.Command, r *robot.Robot) *interpreter.Context {
	ctx := interpreter.NewContext(r, cmd.OutOrStdout())
	ctx.Log = a.logger
	ctx.Show = a.cfg.Display.Show
	ctx.ReportPrefix = a.cfg.Display.ReportPrefix
	return ctx
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
