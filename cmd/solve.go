package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
)

var (
	solveFile  string
	solveStart string
	solveGoal  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the shortest path through a 0/1 grid",
	Long: `Reads a JSON grid (0 = passage, 1 = wall) and prints the shortest path from
start to goal as a JSON list of [x, y] pairs, or null when the goal is unreachable.`,
	Example: `  vinom-maze generate -d 5 --json | vinom-maze solve --start 1,1 --goal 9,9`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parsePosition(solveStart)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		goal, err := parsePosition(solveGoal)
		if err != nil {
			return fmt.Errorf("--goal: %w", err)
		}

		in := cmd.InOrStdin()
		if solveFile != "-" {
			f, err := os.Open(solveFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		cells, err := readGrid(in)
		if err != nil {
			return err
		}

		path, found, err := maze.SolveMaze(cells, start, goal)
		if err != nil {
			return err
		}
		appLogger.Debug("Solver finished", "found", found, "steps", len(path))

		var pairs [][2]int
		if found {
			pairs = make([][2]int, 0, len(path))
			for _, p := range path {
				pairs = append(pairs, [2]int{p.X, p.Y})
			}
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(pairs)
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "-", "JSON grid file, - for stdin")
	solveCmd.Flags().StringVar(&solveStart, "start", "1,1", "start position as x,y")
	solveCmd.Flags().StringVar(&solveGoal, "goal", "", "goal position as x,y")
	_ = solveCmd.MarkFlagRequired("goal")
}

func readGrid(r io.Reader) ([][]int, error) {
	var cells [][]int
	if err := json.NewDecoder(r).Decode(&cells); err != nil {
		return nil, fmt.Errorf("decoding grid: %w", err)
	}
	return cells, nil
}

// parsePosition reads "x,y".
func parsePosition(s string) (maze.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return maze.Position{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return maze.Position{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return maze.Position{}, err
	}
	return maze.Position{X: x, Y: y}, nil
}
