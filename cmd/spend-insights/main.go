package main

import (
	"os"

	"github.com/joho/godotenv"

	"spend-insights/internal/commands"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
