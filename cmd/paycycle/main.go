package main

import (
	"os"

	"github.com/paycycle-dev/paycycle/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
