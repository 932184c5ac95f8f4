// Package cli holds the courseapi commands: serve, migrate and seed.
package cli

import (
	"fmt"
	"os"

	"github.com/deppfellow/course-apis/internal/config"
	"github.com/deppfellow/course-apis/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "courseapi",
		Short:        "Dealership, pokedex and teslo shop APIs",
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return cmd
}

// runtime is what every command needs before touching a backing store.
type runtime struct {
	cfg           *config.Config
	logger        *zerolog.Logger
	loggerService *logger.LoggerService
}

func loadRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return &runtime{
		cfg:           cfg,
		logger:        &log,
		loggerService: loggerService,
	}, nil
}
