package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"rental-schema/migration"
)

// LoadMigrations reads every migration file in the directory, extracts
// its SQL, computes its checksum and registers it. The returned slice is
// sorted by version ascending.
func (l *MigrationLoader) LoadMigrations() ([]*migration.Migration, error) {
	if _, err := os.Stat(l.directory); os.IsNotExist(err) {
		return []*migration.Migration{}, nil
	}

	files, err := os.ReadDir(l.directory)
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".go") {
			continue
		}
		if err := l.loadMigrationFile(filepath.Join(l.directory, file.Name())); err != nil {
			return nil, fmt.Errorf("loading migration file %s: %w", file.Name(), err)
		}
	}

	migrations := migration.GetRegisteredMigrations()
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// loadMigrationFile parses one generated migration file. The filename
// carries version and name (<version>_<name>.go); the Up/Down SQL is
// extracted from the db.Exec calls inside the registered functions.
func (l *MigrationLoader) loadMigrationFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	fileName := filepath.Base(path)
	parts := strings.SplitN(strings.TrimSuffix(fileName, ".go"), "_", 2)
	if len(parts) < 2 {
		return fmt.Errorf("invalid migration filename %q, want <version>_<name>.go", fileName)
	}
	version, name := parts[0], parts[1]

	text := string(content)
	upSQL, err := extractSQL(text, "Up")
	if err != nil {
		return err
	}
	downSQL, err := extractSQL(text, "Down")
	if err != nil {
		return err
	}

	if l.debug {
		fmt.Printf("loaded %s: %d up, %d down statements\n", fileName, len(upSQL), len(downSQL))
	}

	migration.RegisterMigration(&migration.Migration{
		Version:   version,
		Name:      name,
		Checksum:  migration.Checksum(content),
		CreatedAt: time.Now(),
		Up:        execStatements(upSQL),
		Down:      execStatements(downSQL),
	})
	return nil
}

func execStatements(statements []string) func(*gorm.DB) error {
	return func(db *gorm.DB) error {
		for _, statement := range statements {
			if err := db.Exec(statement).Error; err != nil {
				return fmt.Errorf("executing %q: %w", firstLine(statement), err)
			}
		}
		return nil
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

// extractSQL collects the backtick-quoted SQL literals inside the given
// anonymous function ("Up" or "Down") of a generated migration file.
func extractSQL(content, function string) ([]string, error) {
	body, err := functionBody(content, function)
	if err != nil {
		return nil, err
	}

	var statements []string
	for {
		start := strings.IndexByte(body, '`')
		if start < 0 {
			break
		}
		end := strings.IndexByte(body[start+1:], '`')
		if end < 0 {
			return nil, fmt.Errorf("unclosed backtick in %s function", function)
		}
		statement := strings.TrimSpace(body[start+1 : start+1+end])
		if statement != "" {
			statements = append(statements, statement)
		}
		body = body[start+end+2:]
	}
	return statements, nil
}

// functionBody slices out the text of the Up or Down anonymous function.
// Generated files always follow the field order Up before Down.
func functionBody(content, function string) (string, error) {
	marker := fmt.Sprintf("%s: func(db *gorm.DB) error {", function)
	start := strings.Index(content, marker)
	if start < 0 {
		return "", fmt.Errorf("no %s function found", function)
	}
	body := content[start+len(marker):]

	if function == "Up" {
		if end := strings.Index(body, "Down: func(db *gorm.DB) error {"); end >= 0 {
			body = body[:end]
		}
	}
	return body, nil
}
