package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/template-finder/internal/catalog"
	"github.com/jonathan/template-finder/internal/export"
	"github.com/jonathan/template-finder/internal/observability"
	"github.com/jonathan/template-finder/internal/ranking"
	"github.com/jonathan/template-finder/internal/taxonomy"
	"github.com/jonathan/template-finder/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSearchCmd(opts *globalOptions) *cobra.Command {
	var (
		category string
		format   string
		xlsxPath string
		limit    int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Rank templates against a search query",
		Long:  "Rank catalog templates by relevance to a job title, industry or keywords. With no query every template is listed unscored.",
		Args:  cobra.ArbitraryArgs,
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

			query := strings.Join(args, " ")
			res := taxonomy.Resolve(query)
			a.logger.Debug("query resolved", zap.String("outcome", string(res.Outcome)), zap.String("key", res.Key))

			results := catalog.FilterCategory(ranking.SearchTemplates(records, query), category)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			if verbose {
				printer := observability.NewPrinter(cmd.ErrOrStderr())
				printer.PrintResolution(query, res)
				printer.PrintSearchResults(results)
			}

			if xlsxPath != "" {
				if err := writeFile(xlsxPath, func(w io.Writer) error {
					return export.WriteSearchResults(w, results)
				}); err != nil {
					return err
				}
				a.logger.Info("wrote search results", zap.String("path", xlsxPath), zap.Int("count", len(results)))
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, map[string]any{"query": query, "results": results, "count": len(results)})
			}
			printSearchResults(out, query, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show templates in this category")
	cmd.Flags().StringVarP(&format, "out", "o", formatText, "Output format: text or json")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the results to an XLSX workbook")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many results (0 = all)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print query resolution and match details to stderr")
	return cmd
}

func printSearchResults(w io.Writer, query string, results []types.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No templates match %q\n", query)
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%2d. %-32s %-16s score %6.2f\n", i+1, r.Name, r.Category, r.RelevanceScore)
		if len(r.MatchDetails) > 0 {
			fields := make([]string, 0, len(r.MatchDetails))
			for _, d := range r.MatchDetails {
				fields = append(fields, d.Field+"("+d.Type+")")
			}
			fmt.Fprintf(w, "    matched: %s\n", strings.Join(fields, ", "))
		}
	}
}
