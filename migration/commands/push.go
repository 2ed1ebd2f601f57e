package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/migration/driver"
)

func PushCmd(session *db.Session, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Force-sync the schema to the models without recording history",
		Long: `Push applies the full model diff directly via AutoMigrate. No
migration files are written and nothing is recorded in the ledger. It may
silently drop or alter columns to match the declared shape, so it is only
safe against databases whose data you can afford to lose. Use generate/up
everywhere else.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := session.DB()
			if err != nil {
				return err
			}

			models, err := registryModels()
			if err != nil {
				return err
			}

			if err := driver.Push(gdb, log, models...); err != nil {
				return err
			}
			log.Info("schema pushed", zap.Int("models", len(models)))
			return nil
		},
	}
}
