package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireplan/hireplan/internal/observability"
	"github.com/hireplan/hireplan/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a job posting file",
	Long:  "Run every schema and cross-field check against a posting file and report all violations at once.",
	RunE:  runValidate,
}

var (
	validateFile string
	validateJSON bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the posting JSON file (required)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit violations as JSON instead of formatted output")

	validateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	posting, err := loadPosting(validateFile)
	if err != nil {
		return err
	}

	result := validation.ValidatePosting(posting)

	if validateJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result.Errors); err != nil {
			return fmt.Errorf("failed to encode violations: %w", err)
		}
	} else {
		observability.NewPrinter(os.Stdout).PrintValidationReport(&result)
	}

	if !result.Valid() {
		return fmt.Errorf("posting has %d validation errors", len(result.Errors))
	}
	return nil
}
