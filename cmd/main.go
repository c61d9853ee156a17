package main

import (
	"os"

	"github.com/kvltn8/trivia-cli-game/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
