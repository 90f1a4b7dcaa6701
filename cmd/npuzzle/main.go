// Command npuzzle runs the sliding-tile puzzle server or solves a single
// board from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/pdrpinto/npuzzle/internal/obslog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		obslog.Log.Error().Err(err).Msg("npuzzle: fatal")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
