// Command mcpsetup bootstraps a local LinkedIn MCP client project.
package main

import (
	"os"

	"github.com/NielsdaWheelz/mcpsetup/internal/cli"
	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
