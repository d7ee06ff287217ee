// Package main provides the entry point for the Recruit AI dashboard server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recruit_ai",
	Short: "Recruit AI dashboard server",
	Long:  "Recruit AI screens applicant resumes through an AI workflow, scores fit against open positions, and serves the recruiting dashboard via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
