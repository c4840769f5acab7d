package main

import (
	"os"

	"github.com/pipecast/pipecast/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
