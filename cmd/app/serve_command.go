package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			root, err := ctx.compositionRoot()
			if err != nil {
				return err
			}
			logger := ctx.logger()

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server, err := root.CreateHTTPServer()
			if err != nil {
				return err
			}
			e, err := server.NewEcho(runCtx)
			if err != nil {
				return err
			}

			if cfg.SweepEnabled() {
				jobManager := root.CreateJobManager()
				if err := jobManager.StartAll(); err != nil {
					return err
				}
				defer jobManager.StopAll()
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- e.Start("0.0.0.0:" + cfg.HTTPPort)
			}()
			logger.InfoContext(runCtx, "HTTP server listening", "port", cfg.HTTPPort)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-runCtx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logger.InfoContext(shutdownCtx, "Shutting down HTTP server")
			return e.Shutdown(shutdownCtx)
		},
	}
}
