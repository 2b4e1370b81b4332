package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/pdfworkflow/internal/alfred"
)

func newListCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "Print the available operations as Alfred Script Filter JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				query = strings.Join(args, " ")
			}

			descriptors := a.registry.List(query)
			a.log.Debug("Listing %d operation(s) for query %q", len(descriptors), query)

			return alfred.WriteItems(cmd.OutOrStdout(), alfred.Items(descriptors, a.cfg.DocsDir))
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "filter operations by title")

	return cmd
}
