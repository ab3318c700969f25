package main

import (
	"log"

	"github.com/joho/godotenv"

	"tableflip.dev/moodlog/pkg/commands"
)

func main() {
	// Load .env overrides if present (development convenience).
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
