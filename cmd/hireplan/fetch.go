package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireplan/hireplan/internal/observability"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a job posting from the remote API",
	Long:  "Fetch a posting by its remote job ID, for inspection or as a starting point for an update.",
	RunE:  runFetch,
}

var (
	fetchJobID string
	fetchJSON  bool
	fetchOut   string
)

func init() {
	fetchCmd.Flags().StringVar(&fetchJobID, "job-id", "", "Remote job ID to fetch (required)")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "Print the posting as JSON instead of a summary")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "Write the posting JSON to this file")

	fetchCmd.MarkFlagRequired("job-id")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	apiClient, err := buildClient(cfg)
	if err != nil {
		return err
	}

	posting, err := apiClient.GetJob(context.Background(), fetchJobID)
	if err != nil {
		return err
	}

	if fetchOut != "" {
		data, err := json.MarshalIndent(posting, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode posting: %w", err)
		}
		if err := os.WriteFile(fetchOut, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write posting file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote posting to %s\n", fetchOut)
		return nil
	}

	if fetchJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(posting)
	}

	observability.NewPrinter(os.Stdout).PrintPostingSummary(posting)
	return nil
}
