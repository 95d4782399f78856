// Command orbitr runs the RSO catalog service and its maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/orbitr/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
