// Package main is the entry point for the ziri-launcher shim.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ziri-ai/ziri-launcher/internal/app"
	"github.com/ziri-ai/ziri-launcher/internal/cli"
	"github.com/ziri-ai/ziri-launcher/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and returns the process exit status.
func run(args []string) int {
	container := app.New()
	defer container.Close()

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return exitStatus(rootCmd.Execute())
}

// exitStatus maps the command result to the shim's exit status.
// A delegate's status is relayed exactly; any other failure surfaces as
// status 1 with a message on stderr rather than false success.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}
