package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  "Create or upgrade the template tables in the configured PostgreSQL or SQLite database, then report the latest catalog import.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			conn, err := a.database(cmd.Context())
			if err != nil {
				return err
			}
			if err := conn.RunMigrations(cmd.Context(), a.logger); err != nil {
				return err
			}
			a.logger.Info("migrations applied", zap.String("dialect", string(conn.Dialect())))

			latest, err := conn.LatestImport(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if latest == nil {
				fmt.Fprintln(out, "No catalog imported yet")
				return nil
			}
			fmt.Fprintf(out, "Latest import %s: %d templates from %s at %s\n",
				latest.ID, latest.TemplateCount, latest.Source, latest.CreatedAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
}
