package main

import (
	"os"

	"github.com/govalues/numeral/cmd/numsys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
