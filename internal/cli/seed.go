package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/deppfellow/course-apis/internal/lib/utils"
	"github.com/deppfellow/course-apis/internal/repository"
	"github.com/deppfellow/course-apis/internal/server"
	"github.com/deppfellow/course-apis/internal/service"
	"github.com/spf13/cobra"
)

// Only persistent datasets can be seeded offline. Dealership data lives
// in the memory of the serving process, so it is seeded with POST /seed.
var seedTargets = []string{"pokedex", "teslo"}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "seed <pokedex|teslo>",
		Short:     "Reset an API to its seed dataset",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: seedTargets,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}

			srv, err := server.New(rt.cfg, rt.logger, rt.loggerService)
			if err != nil {
				rt.loggerService.Shutdown()
				return fmt.Errorf("failed to initialize server: %w", err)
			}
			defer func() {
				if err := srv.Shutdown(context.Background()); err != nil {
					rt.logger.Error().Err(err).Msg("failed to release resources")
				}
			}()

			services, err := service.NewServices(srv, repository.NewRepositories(srv))
			if err != nil {
				return err
			}

			return runSeed(cmd.Context(), services.Seed, args[0], os.Stdout)
		},
	}
}

// seeder is the part of SeedService the command drives.
type seeder interface {
	Pokedex(ctx context.Context) (string, error)
	Teslo(ctx context.Context) (string, error)
}

func runSeed(ctx context.Context, s seeder, target string, out io.Writer) error {
	var (
		msg string
		err error
	)

	switch target {
	case "pokedex":
		msg, err = s.Pokedex(ctx)
	case "teslo":
		msg, err = s.Teslo(ctx)
	default:
		return fmt.Errorf("unknown seed target %q", target)
	}
	if err != nil {
		return err
	}

	return utils.PrintJSON(out, service.Message(msg))
}
