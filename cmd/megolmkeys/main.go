package main

import (
	"os"

	"megolmkeys/cmd/megolmkeys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
