// Package main is the entry point for the bdk CLI.
package main

import (
	"os"

	"github.com/coreyphillips/bdk-rn/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
