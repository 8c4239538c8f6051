package main

import (
	"github.com/jonathan/template-finder/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Start an HTTP server exposing template search, suggestions, the quiz and recommendations as JSON endpoints.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}

			src, err := a.cachedSource(cmd.Context())
			if err != nil {
				return err
			}

			srv := server.New(server.Config{
				Port:            a.cfg.Server.Port,
				ReadTimeout:     a.cfg.Server.ReadTimeout,
				WriteTimeout:    a.cfg.Server.WriteTimeout,
				ShutdownTimeout: a.cfg.Server.ShutdownTimeout,
				AllowedOrigin:   a.cfg.Server.AllowedOrigin,
			}, src, a.logger)

			stopReload := reloadOnHangup(cmd.Context(), src, a.logger)
			defer stopReload()

			a.logger.Info("serving catalog", zap.Strings("sources", a.cfg.Catalog.Sources))
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides server.port)")
	return cmd
}
