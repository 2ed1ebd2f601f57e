package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/migration/driver"
)

func UpCmd(session *db.Session, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			debug, _ := cmd.Flags().GetBool("debug")

			gdb, err := session.DB()
			if err != nil {
				return err
			}

			loader := getMigrationLoader()
			loader.SetDebug(debug)
			migrations, err := loader.LoadMigrations()
			if err != nil {
				return fmt.Errorf("failed to load migrations: %w", err)
			}

			migrator := driver.NewMigrator(gdb, log)
			applied, err := migrator.AppliedRecords()
			if err != nil {
				return err
			}

			var pendingCount int
			for _, mig := range migrations {
				if _, ok := applied[mig.Version]; !ok {
					pendingCount++
					if dryRun {
						fmt.Printf("- %s (%s)\n", mig.Name, mig.Version)
					}
				}
			}

			if pendingCount == 0 {
				log.Info("no pending migrations")
				return nil
			}
			if dryRun {
				return nil
			}

			if err := migrator.Up(); err != nil {
				return err
			}
			log.Info("migrations applied", zap.Int("count", pendingCount))
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show pending migrations without executing them")
	cmd.Flags().Bool("debug", false, "Print per-file details while loading migrations")

	return cmd
}
