// rentdb is the schema and migration tool for the rental-listing
// database: ledger-tracked migrations, a direct schema push for
// development, and a deterministic seeder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-schema/db"
	"rental-schema/migration"
	"rental-schema/migration/commands"
	"rental-schema/models"
)

type registry struct{}

func (r *registry) GetModels() map[string]interface{} {
	return models.ModelTypeRegistry
}

func init() {
	migration.GlobalModelRegistry = &registry{}
}

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var dsn string

	rootCmd := &cobra.Command{
		Use:   "rentdb",
		Short: "Rental-listing schema & migration tool",
	}
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "database connection string (overrides DATABASE_URL)")

	// One session for the process, opened lazily on first use and
	// released on exit. Flags are parsed before any RunE fires, so the
	// DSN is resolved after the override flag has its final value.
	session := db.NewSession("")
	cobra.OnInitialize(func() {
		session.SetDSN(db.ResolveDSN(dsn))
	})
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn("closing session", zap.Error(err))
		}
	}()

	rootCmd.AddCommand(
		commands.InitCmd(session, log),
		commands.GenerateCmd(session, log),
		commands.UpCmd(session, log),
		commands.DownCmd(session, log),
		commands.StatusCmd(session, log),
		commands.HistoryCmd(session, log),
		commands.ValidateCmd(log),
		commands.PushCmd(session, log),
		commands.SeedCmd(session, log),
	)

	if err := rootCmd.Execute(); err != nil {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn("closing session", zap.Error(closeErr))
		}
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
