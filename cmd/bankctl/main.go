package main

import (
	"os"

	"bankctl/cmd/bankctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
