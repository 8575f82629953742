package main

import (
	"os"

	"github.com/sagemind/carousel/src/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
