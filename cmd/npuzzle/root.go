package main

import (
	"github.com/spf13/cobra"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "npuzzle",
		Short: "Sliding-tile puzzle solver and server",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (optional)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newSolveCmd())
	return root
}
