package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/migration/diff"
	"rental-schema/migration/generator"
)

func GenerateCmd(session *db.Session, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [name]",
		Short: "Diff the live schema against the models and write a migration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			gdb, err := session.DB()
			if err != nil {
				return err
			}

			models, err := registryModels()
			if err != nil {
				return err
			}

			comparer := diff.NewSchemaComparer(gdb)
			schemaDiff, err := comparer.Compare(models...)
			if err != nil {
				return fmt.Errorf("comparing schemas: %w", err)
			}

			if schemaDiff.IsEmpty() {
				log.Info("no schema changes detected, nothing to generate")
				return nil
			}

			upSQL := generator.UpSQL(schemaDiff)
			downSQL := generator.DownSQL(schemaDiff)

			loader := getMigrationLoader()
			path, err := loader.GenerateMigration(name, upSQL, downSQL)
			if err != nil {
				return fmt.Errorf("generating migration: %w", err)
			}

			log.Info("generated migration",
				zap.String("path", path),
				zap.Int("statements", len(upSQL)))
			return nil
		},
	}
}
