package main

import (
	"os"

	"github.com/zapponejosh/holiday-countdown/cmd/countdown/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
