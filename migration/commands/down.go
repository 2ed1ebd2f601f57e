package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/migration/driver"
)

func DownCmd(session *db.Session, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recently applied migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := session.DB()
			if err != nil {
				return err
			}

			loader := getMigrationLoader()
			if _, err := loader.LoadMigrations(); err != nil {
				return fmt.Errorf("failed to load migrations: %w", err)
			}

			migrator := driver.NewMigrator(gdb, log)
			if err := migrator.Down(); err != nil {
				return err
			}
			log.Info("rollback complete")
			return nil
		},
	}
}
