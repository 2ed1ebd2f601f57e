// Package commands wires the migration engine, seeder and schema push
// into cobra subcommands. The database session is constructed once in
// main and passed in; commands never reach for global state.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rental-schema/migration"
	"rental-schema/migration/file"
)

// registryModels returns the desired schema state in registration order.
func registryModels() ([]interface{}, error) {
	if err := migration.ValidateRegistry(); err != nil {
		return nil, err
	}
	registry := migration.GlobalModelRegistry.GetModels()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	// Deterministic order; the diff pipeline re-sorts by dependency.
	sort.Strings(names)

	models := make([]interface{}, 0, len(names))
	for _, name := range names {
		models = append(models, registry[name])
	}
	return models, nil
}

func validateMigrationsPath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", fmt.Errorf("invalid migrations path: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if !strings.HasPrefix(absPath, wd) {
		return "", fmt.Errorf("migrations path must be within working directory")
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return "", fmt.Errorf("migrations path is not writable: %w", err)
	}

	return absPath, nil
}

func getMigrationsDir() string {
	dir := os.Getenv("MIGRATIONS_PATH")
	if dir == "" {
		dir = "migrations"
	}

	cleanDir, err := validateMigrationsPath(dir)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		fmt.Println("Falling back to default 'migrations' directory")
		cleanDir, _ = validateMigrationsPath("migrations")
	}

	return cleanDir
}

func getMigrationLoader() *file.MigrationLoader {
	template := &file.MigrationTemplate{
		Version: "20060102150405",
		Name:    "%s",
	}
	return file.NewMigrationLoader(getMigrationsDir(), template)
}
