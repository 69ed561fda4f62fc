package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/cli"
)

func main() {
	// Optional .env alongside the binary; missing file is fine
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
