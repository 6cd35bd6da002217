package main

import (
	"os"

	"github.com/wonny/divscreen/cmd/divscreen/commands"
)

// main is the entry point for the divscreen CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
