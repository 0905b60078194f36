package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyimports/internal/api"
	"github.com/matzehuels/pyimports/pkg/config"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// serve command receives an interrupt.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command exposing the organizer over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the import organizer as an HTTP API",
		Long: `Serve the import organizer as an HTTP API.

Endpoints:
  POST /v1/organize   organize statements and specs sent as JSON
  GET  /v1/registry   registry table sizes

The config file provides server-side defaults (registry overrides, local
package, formatting profile); requests may override them per call.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (defaults to ./pyimports.toml if present)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, configPath string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultFileName)
	}
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.New(c.Logger, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
