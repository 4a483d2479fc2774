package main

import (
	"os"

	"nkeyid/cmd/nkeyid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
