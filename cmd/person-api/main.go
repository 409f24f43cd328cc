package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/docs"
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/lib/utils"
	"github.com/deppfellow/person-api/internal/logger"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/router"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

const (
	version         = "0.1.0"
	shutdownTimeout = 30 * time.Second
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	openapi := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, registry, err := buildApp()
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), registry.Swagger())
		},
	}

	root := &cobra.Command{
		Use:          config.ServiceName,
		Short:        "Person validation API",
		Version:      version,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, openapi)

	return root
}

// buildApp wires config, logging, services, handlers and routes.
func buildApp() (*server.Server, *docs.Registry, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv := server.New(cfg, &log, loggerService)

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)

	registry := docs.NewRegistry(
		"Person API",
		version,
		"Validates person, login, contact and image upload requests.",
	)
	handlers := handler.NewHandlers(srv, services, registry)
	r := router.NewRouter(srv, handlers, registry)

	srv.SetupHTTPServer(r)

	return srv, registry, nil
}

func runServe(ctx context.Context) error {
	srv, _, err := buildApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			srv.Logger.Error().Err(err).Msg("server failed")
		}
		srv.LoggerService.Shutdown()
		return err
	case <-ctx.Done():
	}

	srv.Logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		srv.Logger.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	srv.Logger.Info().Msg("server exited properly")
	return nil
}
