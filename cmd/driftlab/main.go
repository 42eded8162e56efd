// Command driftlab runs the pressure-diffusion stress-test harness.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/driftlab/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
