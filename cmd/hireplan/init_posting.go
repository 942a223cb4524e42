package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireplan/hireplan/internal/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter posting file",
	Long:  "Write a posting scaffold with default automation configuration and an example pre-screening question, ready to be filled in and validated.",
	RunE:  runInit,
}

var initOut string

func init() {
	initCmd.Flags().StringVarP(&initOut, "out", "o", "posting.json", "Path of the posting file to create")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOut); err == nil {
		return fmt.Errorf("%s already exists; refusing to overwrite", initOut)
	}

	posting := types.NewJobPosting()
	posting.WorkType = types.WorkInPerson
	posting.Location = &types.JobLocation{}

	question := types.NewCustomQuestion(types.QuestionSelect, "Which shifts can you work?")
	question.Required = true
	question.Options = []string{"Morning", "Evening", "Weekend"}
	posting.CustomQuestions = []types.CustomQuestion{question}

	data, err := json.MarshalIndent(posting, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode posting: %w", err)
	}

	if err := os.WriteFile(initOut, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write posting file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote posting scaffold to %s\n", initOut)
	return nil
}
