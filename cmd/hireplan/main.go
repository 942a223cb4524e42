// Package main provides the entry point for the HirePlan posting CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hireplan",
	Short: "HirePlan job posting tools",
	Long:  "Validate HirePlan job postings locally and submit them to the remote job API.",
}

// Connection flags shared by every command that talks to the API.
var (
	apiURLFlag  string
	tokenFlag   string
	configFlag  string
	timeoutFlag int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Base URL of the HirePlan job API")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "Bearer token for API requests")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", 0, "HTTP timeout in seconds")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
