// Package main provides the template_finder CLI: search, recommendations, the HTTP API and the MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
