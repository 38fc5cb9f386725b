// Package cmd implements the vinom-maze command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/spf13/cobra"
)

var (
	debug     bool
	appLogger *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vinom-maze",
	Short: "Perfect maze generation, solving and leaderboard service",
	Long: `vinom-maze generates perfect mazes with randomized Kruskal's (or Wilson's)
algorithm, solves wall/passage grids with breadth-first search, and serves both
over HTTP together with a leaderboard of player times.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appLogger, err = logger.New("APP", config.ColorGreen, os.Stderr, debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, generateCmd, solveCmd, archiveCmd, tokenCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
