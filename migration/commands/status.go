package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/migration/driver"
)

func StatusCmd(session *db.Session, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := session.DB()
			if err != nil {
				return err
			}

			loader := getMigrationLoader()
			migrations, err := loader.LoadMigrations()
			if err != nil {
				return fmt.Errorf("failed to load migrations: %w", err)
			}

			migrator := driver.NewMigrator(gdb, log)
			applied, err := migrator.AppliedRecords()
			if err != nil {
				return err
			}

			fmt.Printf("%-16s  %-30s  %-8s\n", "Version", "Name", "Status")
			for _, mig := range migrations {
				status := "Pending"
				if record, ok := applied[mig.Version]; ok {
					status = "Applied"
					if record.Checksum != "" && mig.Checksum != "" && record.Checksum != mig.Checksum {
						status = "MODIFIED"
					}
				}
				fmt.Printf("%-16s  %-30s  %-8s\n", mig.Version, mig.Name, status)
			}

			return nil
		},
	}
}
