package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireplan/hireplan/internal/observability"
	"github.com/hireplan/hireplan/internal/types"
	"github.com/hireplan/hireplan/internal/validation"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a job posting to the remote API",
	Long:  "Validate a posting file and submit it. A posting with a --job-id is updated in place; otherwise a new posting is created.",
	RunE:  runSubmit,
}

var (
	submitFile      string
	submitJobID     string
	submitPreflight bool
)

func init() {
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "Path to the posting JSON file (required)")
	submitCmd.Flags().StringVar(&submitJobID, "job-id", "", "Remote job ID to update; omit to create a new posting")
	submitCmd.Flags().BoolVar(&submitPreflight, "preflight", false, "Verify remote references before submitting")

	submitCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	posting, err := loadPosting(submitFile)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)

	// Never send a posting the local checks reject. The server would reject
	// it too, but one field at a time.
	result := validation.ValidatePosting(posting)
	if !result.Valid() {
		printer.PrintValidationReport(&result)
		return fmt.Errorf("posting has %d validation errors; fix them before submitting", len(result.Errors))
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	apiClient, err := buildClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if submitPreflight || cfg.Preflight {
		missing, err := apiClient.VerifyReferences(ctx, posting)
		if err != nil {
			return fmt.Errorf("preflight failed: %w", err)
		}
		if len(missing) > 0 {
			printer.PrintMissingReferences(missing)
			return fmt.Errorf("preflight found %d unresolved references", len(missing))
		}
	}

	var saved *types.JobPosting
	if submitJobID != "" {
		saved, err = apiClient.UpdateJob(ctx, submitJobID, posting)
	} else {
		saved, err = apiClient.CreateJob(ctx, posting)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Submitted posting %s\n", saved.ID)
	printer.PrintPostingSummary(saved)
	return nil
}
