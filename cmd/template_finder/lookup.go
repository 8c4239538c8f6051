package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/template-finder/internal/catalog"
	"github.com/jonathan/template-finder/internal/suggest"
	"github.com/spf13/cobra"
)

func newSuggestCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "suggest <partial>",
		Short: "Autocomplete a partial search",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			src, err := a.source(cmd.Context())
			if err != nil {
				return err
			}
			records, err := src.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			return printList(cmd, format, "suggestions", suggest.SearchSuggestions(records, strings.Join(args, " ")))
		},
	}
	cmd.Flags().StringVarP(&format, "out", "o", formatText, "Output format: text or json")
	return cmd
}

func newPopularCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List popular search terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			src, err := a.source(cmd.Context())
			if err != nil {
				return err
			}
			records, err := src.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			return printList(cmd, format, "terms", suggest.PopularSearchTerms(records))
		},
	}
	cmd.Flags().StringVarP(&format, "out", "o", formatText, "Output format: text or json")
	return cmd
}

func newCategoriesCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			src, err := a.source(cmd.Context())
			if err != nil {
				return err
			}
			records, err := src.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			return printList(cmd, format, "categories", catalog.Categories(records))
		},
	}
	cmd.Flags().StringVarP(&format, "out", "o", formatText, "Output format: text or json")
	return cmd
}

func printList(cmd *cobra.Command, format, key string, values []string) error {
	out := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(out, map[string][]string{key: values})
	}
	for _, v := range values {
		fmt.Fprintln(out, v)
	}
	return nil
}
