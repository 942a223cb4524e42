package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireplan/hireplan/internal/client"
	"github.com/hireplan/hireplan/internal/observability"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings on the remote API",
	RunE:  runList,
}

var (
	listPage    int
	listPerPage int
	listSearch  string
)

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number to fetch")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 20, "Postings per page")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter postings by a search term")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	apiClient, err := buildClient(cfg)
	if err != nil {
		return err
	}

	page, err := apiClient.ListJobs(context.Background(), client.ListOptions{
		Page:    listPage,
		PerPage: listPerPage,
		Search:  listSearch,
	})
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintJobPage(page)
	return nil
}
