package main

import (
	"os"

	"github.com/JosephHickey1/halfwell/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
