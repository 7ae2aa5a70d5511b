package main

import (
	"os"

	"github.com/buynary/backend/cmd/buynary/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
