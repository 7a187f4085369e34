package main

import (
	"fmt"
	"os"

	"audio-insights/cmd/a2i/cmd"
	"audio-insights/internal/config"
)

func main() {
	// Load .env and surface key problems early; individual commands
	// decide which keys they actually require.
	if _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	cmd.Execute()
}
