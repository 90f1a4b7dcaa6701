package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/npuzzle"
)

func newSolveCmd() *cobra.Command {
	var (
		puzzleCSV    string
		size         int
		maxExpand    int
		batchSize    int
		enableUpdate bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single board from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles, err := parseTiles(puzzleCSV)
			if err != nil {
				return err
			}
			if len(tiles) != size*size {
				return fmt.Errorf("puzzle has %d tiles, want %d for size %d", len(tiles), size*size, size)
			}

			start := npuzzle.NewState(tiles)
			path, solved := npuzzle.Solve(start, size, maxExpand, batchSize, enableUpdate)

			for i, s := range path {
				fmt.Printf("step %d: %v\n", i, s.Tiles(size))
			}
			if solved {
				fmt.Printf("solved in %d moves\n", len(path)-1)
			} else {
				fmt.Println("budget exhausted before a solution was found; showing best partial progress")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&puzzleCSV, "puzzle", "", "comma-separated tile list, e.g. 1,2,3,4,5,6,7,0,8")
	cmd.Flags().IntVar(&size, "size", 3, "board dimension N for an N×N puzzle")
	cmd.Flags().IntVar(&maxExpand, "max-expansions", 50000, "expansion budget before returning partial progress")
	cmd.Flags().IntVar(&batchSize, "batch-size", 50, "expansions between father's-rule updates")
	cmd.Flags().BoolVar(&enableUpdate, "update-heuristic", false, "enable the father's-rule heuristic repair")
	_ = cmd.MarkFlagRequired("puzzle")
	return cmd
}

func parseTiles(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	tiles := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid tile %q: %w", p, err)
		}
		tiles = append(tiles, v)
	}
	return tiles, nil
}
