package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/migration"
)

func InitCmd(session *db.Session, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the migration ledger table and migrations directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := session.DB()
			if err != nil {
				return err
			}

			migrationsDir := getMigrationsDir()

			if err := gdb.AutoMigrate(&migration.MigrationRecord{}); err != nil {
				return fmt.Errorf("failed to create migration_records table: %w", err)
			}

			log.Info("migration system initialized", zap.String("dir", migrationsDir))
			return nil
		},
	}
}
