package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/template-finder/internal/catalog"
	"github.com/jonathan/template-finder/internal/config"
	"github.com/jonathan/template-finder/internal/db"
	"github.com/jonathan/template-finder/internal/fetch"
	"github.com/jonathan/template-finder/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	catalogs   []string
	debug      bool
	jsonLog    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "template_finder",
		Short:         "Resume template search and recommendations",
		Long:          "template_finder ranks resume templates against job-title searches and quiz answers, over the CLI, an HTTP API or MCP.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringSliceVar(&opts.catalogs, "catalog", nil, "Catalog source URI, repeatable (overrides configured sources)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Verbose/debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonLog, "json-log", false, "Log in JSON format")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newSearchCmd(opts),
		newRecommendCmd(opts),
		newSuggestCmd(opts),
		newPopularCmd(opts),
		newCategoriesCmd(opts),
		newMCPCmd(opts),
		newMigrateCmd(opts),
		newImportCmd(opts),
	)

	return rootCmd
}

// app carries the configuration and clients built for one command run.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *db.DB
}

// newApp loads configuration, applies flag overrides and builds the logger.
func newApp(opts *globalOptions) (*app, error) {
	loaded, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	// a file that zeroes a field still gets the default
	merged := loaded.MergeWithDefaults(config.Defaults())
	cfg := &merged

	if len(opts.catalogs) > 0 {
		cfg.Catalog.Sources = slices.Clone(opts.catalogs)
	}
	if opts.debug {
		cfg.Log.Debug = true
	}
	if opts.jsonLog {
		cfg.Log.JSON = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &app{cfg: cfg, logger: log}, nil
}

// database connects to the configured SQL store once.
func (a *app) database(ctx context.Context) (*db.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	dialect, err := db.ParseDialect(a.cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	conn, err := db.Connect(ctx, dialect, a.cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	a.db = conn
	return conn, nil
}

// openSources builds a source from uris, connecting only the clients they need.
func (a *app) openSources(ctx context.Context, uris []string) (catalog.Source, error) {
	deps := catalog.Deps{
		Retries: a.cfg.Catalog.Retries,
		Logger:  a.logger,
	}

	fetchOpts := fetch.DefaultOptions()
	if a.cfg.Catalog.Timeout > 0 {
		fetchOpts.Timeout = a.cfg.Catalog.Timeout
	}
	fetchOpts.UserAgent = "template-finder/" + version
	deps.Fetch = fetchOpts

	for _, uri := range uris {
		switch {
		case uri == "db" && deps.DB == nil:
			conn, err := a.database(ctx)
			if err != nil {
				return nil, err
			}
			deps.DB = conn
		case strings.HasPrefix(uri, "s3://") && deps.Objects == nil:
			fetcher, err := catalog.NewMinioFetcher(catalog.ObjectStoreConfig{
				Endpoint:        a.cfg.ObjectStore.Endpoint,
				AccessKeyID:     a.cfg.ObjectStore.AccessKeyID,
				SecretAccessKey: a.cfg.ObjectStore.SecretAccessKey,
				Region:          a.cfg.ObjectStore.Region,
				UseSSL:          a.cfg.ObjectStore.UseSSL,
			})
			if err != nil {
				return nil, err
			}
			deps.Objects = fetcher
		}
	}

	return catalog.OpenAll(uris, deps)
}

// source opens the configured catalog.
func (a *app) source(ctx context.Context) (catalog.Source, error) {
	return a.openSources(ctx, a.cfg.Catalog.Sources)
}

// cachedSource opens the configured catalog behind a TTL cache for long-running commands.
func (a *app) cachedSource(ctx context.Context) (*catalog.CachedSource, error) {
	src, err := a.source(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewCachedSource(src, a.cfg.Catalog.CacheTTL, a.logger), nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	_ = a.logger.Sync()
}
