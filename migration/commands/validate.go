package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func ValidateCmd(log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate that all migration files parse",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := getMigrationLoader()
			migrations, err := loader.LoadMigrations()
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			log.Info("all migrations are valid", zap.Int("count", len(migrations)))
			return nil
		},
	}
}
