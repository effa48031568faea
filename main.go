package main

import (
	"os"

	"github.com/daykit/go-session-extract/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
