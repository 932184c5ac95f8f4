package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/course-apis/internal/database"
	"github.com/deppfellow/course-apis/internal/handler"
	"github.com/deppfellow/course-apis/internal/repository"
	"github.com/deppfellow/course-apis/internal/router"
	"github.com/deppfellow/course-apis/internal/server"
	"github.com/deppfellow/course-apis/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and the background job worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), rt)
		},
	}
}

func serve(ctx context.Context, rt *runtime) error {
	log := rt.logger

	// Locally the schema is migrated by hand with "courseapi migrate".
	if !rt.cfg.IsLocal() {
		if err := database.Migrate(ctx, log, rt.cfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(rt.cfg, log, rt.loggerService)
	if err != nil {
		rt.loggerService.Shutdown()
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	services, err := service.NewServices(srv, repository.NewRepositories(srv))
	if err != nil {
		return releaseOnError(srv, log, fmt.Errorf("could not create services: %w", err))
	}

	if err := srv.StartJobs(); err != nil {
		log.Error().Err(err).Msg("failed to start job worker, continuing without background jobs")
	}

	r := router.NewRouter(srv, handler.NewHandlers(srv, services), services)
	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		err = errors.Join(err, shutdownErr)
	}

	if err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}

// shutdowner is the part of *server.Server released on start-up failures.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// releaseOnError closes every connection held by srv and returns err.
func releaseOnError(srv shutdowner, log *zerolog.Logger, err error) error {
	if shutdownErr := srv.Shutdown(context.Background()); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("failed to release resources")
	}
	return err
}
