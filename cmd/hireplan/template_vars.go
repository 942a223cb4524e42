package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hireplan/hireplan/internal/templates"
)

var templateVarsCmd = &cobra.Command{
	Use:   "template-vars",
	Short: "List the placeholders used by an email template",
	Long:  "Extract the {{variable}} placeholders from an email template file and flag the ones the backend will not populate.",
	RunE:  runTemplateVars,
}

var templateVarsFile string

func init() {
	templateVarsCmd.Flags().StringVarP(&templateVarsFile, "file", "f", "", "Path to the template text file (required)")

	templateVarsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(templateVarsCmd)
}

func runTemplateVars(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(templateVarsFile)
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", templateVarsFile, err)
	}

	names := templates.Variables(string(data))
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "Template uses no placeholders")
		return nil
	}

	var unknown []string
	for _, name := range names {
		marker := ""
		if !slices.Contains(templates.StandardVariables, name) {
			marker = "  (not populated by the backend)"
			unknown = append(unknown, name)
		}
		fmt.Fprintf(os.Stdout, "  {{%s}}%s\n", name, marker)
	}

	if len(unknown) > 0 {
		return fmt.Errorf("template references %d placeholders the backend does not populate", len(unknown))
	}
	return nil
}
