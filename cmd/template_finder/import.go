package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newImportCmd(opts *globalOptions) *cobra.Command {
	var (
		from    []string
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the stored catalog with templates from other sources",
		Long:  "Load templates from files, URLs or object storage and replace the SQL catalog with them in one transaction.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, uri := range from {
				if strings.TrimSpace(uri) == "db" {
					return fmt.Errorf("cannot import from the database into itself")
				}
			}

			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			conn, err := a.database(cmd.Context())
			if err != nil {
				return err
			}
			if migrate {
				if err := conn.RunMigrations(cmd.Context(), a.logger); err != nil {
					return err
				}
			}

			src, err := a.openSources(cmd.Context(), from)
			if err != nil {
				return err
			}
			records, err := src.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load templates: %w", err)
			}

			run, err := conn.ReplaceTemplates(cmd.Context(), strings.Join(from, ","), records)
			if err != nil {
				return err
			}

			a.logger.Info("catalog imported",
				zap.String("import_id", run.ID.String()),
				zap.Int("templates", run.TemplateCount),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d templates (import %s)\n", run.TemplateCount, run.ID)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&from, "from", nil, "Source URI to import, repeatable (required)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply migrations before importing")
	if err := cmd.MarkFlagRequired("from"); err != nil {
		panic(fmt.Sprintf("failed to mark from flag as required: %v", err))
	}
	return cmd
}
