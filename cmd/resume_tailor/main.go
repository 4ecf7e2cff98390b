// Package main provides the entry point for the resume tailor CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Resume structuring and job-targeted tailoring",
	Long:  "Resume Tailor parses unstructured resume text into a structured document and rewrites it to emphasize the experience most relevant to a target job posting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
