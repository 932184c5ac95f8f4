package cli

import (
	"github.com/deppfellow/course-apis/internal/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the teslo shop database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			defer rt.loggerService.Shutdown()

			return database.Migrate(cmd.Context(), rt.logger, rt.cfg)
		},
	}
}
