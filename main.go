package main

import (
	"os"

	"github.com/RucksP/slippi-launcher/cmd"
	"github.com/RucksP/slippi-launcher/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
