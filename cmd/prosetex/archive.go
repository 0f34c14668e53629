package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/prosetex/internal/archive"
	"github.com/pdiddy/prosetex/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect past conversion runs",
	Long: `Archive lists and searches the catalog of past conversions. Every
convert run (unless invoked with --no-archive) records the document
title, output paths, compile status, and the full source text for
full-text search.`,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded conversions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.NewStore(loadConfig().Archive)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		docs, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		return printDocuments(cmd, docs)
	},
}

var archiveSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over titles and source text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.NewStore(loadConfig().Archive)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		docs, err := store.Search(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		return printDocuments(cmd, docs)
	},
}

func printDocuments(cmd *cobra.Command, docs []types.Document) error {
	if len(docs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No documents found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSTATUS\tTITLE")
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			d.ID, d.CreatedAt.Format(time.DateOnly), d.CompileStatus, d.Title)
	}
	return w.Flush()
}

func init() {
	archiveListCmd.Flags().IntP("limit", "n", 0, "maximum rows to show (default: archive.max_results)")
	archiveSearchCmd.Flags().IntP("limit", "n", 0, "maximum rows to show (default: archive.max_results)")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveSearchCmd)
	rootCmd.AddCommand(archiveCmd)
}
