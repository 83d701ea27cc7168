// Command slayerdex browses Demon Slayer characters from the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/slayerdex/internal/cli"
	"github.com/rshade/slayerdex/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SilenceErrors = true
	return root.ExecuteContext(context.Background())
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
