package main

import (
	"os"

	"github.com/Simplici0/moldcost/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
