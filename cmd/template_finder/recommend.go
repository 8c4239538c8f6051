package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/template-finder/internal/export"
	"github.com/jonathan/template-finder/internal/observability"
	"github.com/jonathan/template-finder/internal/recommend"
	"github.com/jonathan/template-finder/internal/types"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// askFunc picks an option value for one quiz question.
type askFunc func(q recommend.Question) (string, error)

// promptQuestion asks a question with an arrow-key select.
func promptQuestion(q recommend.Question) (string, error) {
	prompt := promptui.Select{
		Label: q.Title,
		Items: q.Options,
		Size:  len(q.Options),
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ .Label | cyan }}",
			Inactive: "  {{ .Label }}",
			Selected: "✔ {{ .Label | green }}",
			Details:  "{{ .Description | faint }}",
		},
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt for %s: %w", q.ID, err)
	}
	return q.Options[idx].Value, nil
}

// askAll fills every unanswered dimension through ask.
func askAll(answers *types.QuizAnswers, ask askFunc) error {
	for _, q := range recommend.Questions() {
		if answers.Get(q.ID) != "" {
			continue
		}
		value, err := ask(q)
		if err != nil {
			return err
		}
		answers.Set(q.ID, value)
	}
	return nil
}

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	return newRecommendCmdWith(opts, promptQuestion)
}

func newRecommendCmdWith(opts *globalOptions, ask askFunc) *cobra.Command {
	var (
		answers     types.QuizAnswers
		interactive bool
		format      string
		xlsxPath    string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend templates from quiz answers",
		Long: "Score the catalog against the five quiz answers and print up to six recommendations. " +
			"With --interactive, unanswered questions are asked one at a time.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			if interactive {
				if err := askAll(&answers, ask); err != nil {
					return err
				}
			}
			if err := answers.Validate(); err != nil {
				return fmt.Errorf("invalid quiz answers: %w", err)
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

			recs := recommend.ScoreRecommendations(records, answers)

			if verbose {
				printer := observability.NewPrinter(cmd.ErrOrStderr())
				printer.PrintAnswers(answers)
				printer.PrintRecommendations(recs)
			}

			if xlsxPath != "" {
				if err := writeFile(xlsxPath, func(w io.Writer) error {
					return export.WriteRecommendations(w, recs)
				}); err != nil {
					return err
				}
				a.logger.Info("wrote recommendations", zap.String("path", xlsxPath), zap.Int("count", len(recs)))
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, map[string]any{"answers": answers, "recommendations": recs, "count": len(recs)})
			}
			printRecommendations(out, recs)
			return nil
		},
	}

	for _, q := range recommend.Questions() {
		values := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			values = append(values, o.Value)
		}
		usage := fmt.Sprintf("%s (%s)", q.Title, strings.Join(values, "|"))
		cmd.Flags().StringVar(dimensionField(&answers, q.ID), q.ID, "", usage)
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask unanswered questions interactively")
	cmd.Flags().StringVarP(&format, "out", "o", formatText, "Output format: text or json")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the recommendations to an XLSX workbook")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print answers and raw scores to stderr")
	return cmd
}

// dimensionField returns the answer field bound to a dimension flag.
func dimensionField(a *types.QuizAnswers, dimension string) *string {
	switch dimension {
	case types.DimensionExperience:
		return &a.Experience
	case types.DimensionIndustry:
		return &a.Industry
	case types.DimensionStyle:
		return &a.Style
	case types.DimensionGoal:
		return &a.Goal
	default:
		return &a.Timeframe
	}
}

func printRecommendations(w io.Writer, recs []types.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "The catalog is empty")
		return
	}
	for i, r := range recs {
		fmt.Fprintf(w, "%d. %s (%s) %d%% match\n", i+1, r.Name, r.Category, r.MatchPercentage)
		for _, reason := range r.Reasons {
			fmt.Fprintf(w, "   - %s\n", reason)
		}
		fmt.Fprintf(w, "   %s\n", r.BuilderURL)
	}
}
