package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// GenerateMigration writes a timestamped migration file registering the
// given Up and Down SQL statements. The file is append-only once applied
// anywhere: editing it later trips the checksum verification.
func (l *MigrationLoader) GenerateMigration(name string, upSQL, downSQL []string) (string, error) {
	if err := os.MkdirAll(l.directory, 0755); err != nil {
		return "", fmt.Errorf("creating migrations directory: %w", err)
	}

	version := time.Now().Format(l.template.Version)
	formattedName := l.template.FormatName(name)
	filename := fmt.Sprintf("%s_%s.go", version, formattedName)
	path := filepath.Join(l.directory, filename)

	content := fmt.Sprintf(`package migrations

import (
	"time"

	"gorm.io/gorm"

	"rental-schema/migration"
)

func init() {
	migration.RegisterMigration(&migration.Migration{
		Version:   "%s",
		Name:      "%s",
		CreatedAt: time.Now(),
		Up: func(db *gorm.DB) error {
			%s
			return nil
		},
		Down: func(db *gorm.DB) error {
			%s
			return nil
		},
	})
}
`, version, formattedName, formatExecBlock(upSQL), formatExecBlock(downSQL))

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing migration file: %w", err)
	}
	return path, nil
}

// formatExecBlock wraps each statement in a db.Exec call with error
// handling, indented for the generated function body.
func formatExecBlock(statements []string) string {
	if len(statements) == 0 {
		return "// no statements"
	}
	var blocks []string
	for _, statement := range statements {
		blocks = append(blocks,
			fmt.Sprintf("if err := db.Exec(`%s`).Error; err != nil {\n\t\t\t\treturn err\n\t\t\t}", statement))
	}
	return strings.Join(blocks, "\n\t\t\t")
}
