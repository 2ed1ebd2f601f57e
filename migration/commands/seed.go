package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/seed"
)

func SeedCmd(session *db.Session, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the deterministic development dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := session.DB()
			if err != nil {
				return err
			}
			return seed.Run(gdb, log)
		},
	}
}
