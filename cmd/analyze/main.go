// Command analyze is a CLI for inspecting and solving puzzle configuration
// files without running the server. It can render a configured board, run
// the solver against it, and generate random boards with an optional
// solvability probe.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/jumpin-puzzle/jumpin/game/engine"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "inspect, solve, and generate puzzle boards",
		Commands: []*cli.Command{
			solveCommand(),
			showCommand(),
			generateCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "run the solver against a puzzle configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "classic",
				Usage: "config name to solve",
			},
			&cli.StringFlag{
				Name:  "configs-dir",
				Value: "configs",
				Usage: "directory containing puzzle configurations",
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: "bfs",
				Usage: "search mode (bfs or dfs)",
			},
			&cli.IntFlag{
				Name:  "budget",
				Value: 0,
				Usage: "node expansion budget (0 = unlimited)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config, err := engine.LoadConfigByName(cmd.String("configs-dir"), cmd.String("config"))
			if err != nil {
				return err
			}

			mode, err := engine.ParseSearchMode(cmd.String("mode"))
			if err != nil {
				return err
			}

			board, err := engine.BoardFromConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("=== %s (%s) ===\n", config.Name, config.Description)
			fmt.Println(board)

			solver := engine.NewSolver(mode)
			solver.NodeBudget = int(cmd.Int("budget"))

			start := time.Now()
			solution, err := solver.Solve(board)
			elapsed := time.Since(start)

			switch {
			case errors.Is(err, engine.ErrNoSolution):
				fmt.Printf("No solution exists (reachable space exhausted in %s)\n", elapsed)
				return err
			case errors.Is(err, engine.ErrSearchAborted):
				fmt.Printf("Search aborted: budget of %d expansions exhausted after %s\n",
					solver.NodeBudget, elapsed)
				return err
			case err != nil:
				return err
			}

			fmt.Printf("Solved in %d moves (%s, %d states visited, %s)\n\n",
				len(solution.Moves), solution.Mode, solution.StatesVisited, elapsed)
			fmt.Println(engine.RenderMoves(solution.Moves))
			fmt.Println("Final board:")
			fmt.Println(solution.Final)
			return nil
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "render a puzzle configuration's starting board",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "classic",
				Usage: "config name to render",
			},
			&cli.StringFlag{
				Name:  "configs-dir",
				Value: "configs",
				Usage: "directory containing puzzle configurations",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config, err := engine.LoadConfigByName(cmd.String("configs-dir"), cmd.String("config"))
			if err != nil {
				return err
			}

			board, err := engine.BoardFromConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("=== %s ===\n", config.Name)
			fmt.Printf("%s\n\n", config.Description)
			fmt.Println(board)
			fmt.Printf("Board: %dx%d | Mushrooms: %d | Bunnies: %d | Foxes: %d | Goals: %d\n",
				board.Size, board.Size,
				len(board.Mushrooms), len(board.Bunnies), len(board.Foxes), len(board.Goals))
			return nil
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate a random board and optionally probe solvability",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Value: 5,
				Usage: "board size",
			},
			&cli.IntFlag{
				Name:  "mushrooms",
				Value: 3,
				Usage: "number of mushrooms",
			},
			&cli.IntFlag{
				Name:  "bunnies",
				Value: 3,
				Usage: "number of bunnies",
			},
			&cli.IntFlag{
				Name:  "foxes",
				Value: 2,
				Usage: "number of foxes",
			},
			&cli.IntFlag{
				Name:  "seed",
				Value: 0,
				Usage: "random seed (0 = time-based)",
			},
			&cli.BoolFlag{
				Name:  "probe",
				Usage: "run a BFS solvability probe on the generated board",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			seed := int64(cmd.Int("seed"))
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			board, err := engine.RandomBoard(
				int(cmd.Int("size")),
				int(cmd.Int("mushrooms")),
				int(cmd.Int("bunnies")),
				int(cmd.Int("foxes")),
				rng,
			)
			if err != nil {
				return err
			}

			fmt.Printf("Generated board (seed %d):\n", seed)
			fmt.Println(board)

			if !cmd.Bool("probe") {
				return nil
			}

			solution, err := engine.NewSolver(engine.BreadthFirst).Solve(board)
			if errors.Is(err, engine.ErrNoSolution) {
				fmt.Println("Probe: NOT solvable")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Probe: solvable in %d moves (%d states visited)\n",
				len(solution.Moves), solution.StatesVisited)
			return nil
		},
	}
}
