package file

import (
	"fmt"
	"strings"
)

// MigrationTemplate controls how migration filenames are built:
// Version is a time.Format layout, Name a fmt pattern for the label.
type MigrationTemplate struct {
	Version string
	Name    string
}

func (t *MigrationTemplate) FormatName(name string) string {
	formatted := fmt.Sprintf(t.Name, name)
	formatted = strings.ToLower(formatted)
	formatted = strings.ReplaceAll(formatted, " ", "_")
	formatted = strings.ReplaceAll(formatted, "-", "_")
	return formatted
}

// MigrationLoader reads and writes the migrations directory.
type MigrationLoader struct {
	directory string
	template  *MigrationTemplate
	debug     bool
}

func NewMigrationLoader(directory string, template *MigrationTemplate) *MigrationLoader {
	return &MigrationLoader{
		directory: directory,
		template:  template,
	}
}

func (l *MigrationLoader) SetDebug(debug bool) {
	l.debug = debug
}

func (l *MigrationLoader) Directory() string {
	return l.directory
}
