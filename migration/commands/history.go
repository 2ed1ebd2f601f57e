package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/migration"
)

func HistoryCmd(session *db.Session, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show applied migrations in apply order",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := session.DB()
			if err != nil {
				return err
			}

			var records []migration.MigrationRecord
			if err := gdb.Order("applied_at ASC").Find(&records).Error; err != nil {
				return fmt.Errorf("failed to read migration ledger: %w", err)
			}

			if len(records) == 0 {
				log.Info("no migrations applied yet")
				return nil
			}

			fmt.Printf("%-16s  %-30s  %-20s\n", "Version", "Name", "Applied At")
			for _, record := range records {
				fmt.Printf("%-16s  %-30s  %-20s\n",
					record.Version, record.Name, record.AppliedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
