package diff

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GetModelSchemas parses the given models and returns their schemas in
// dependency order, parents before children, so DDL emitted from the
// result can reference parent tables inline.
func (c *SchemaComparer) GetModelSchemas(models ...interface{}) ([]*schema.Schema, error) {
	parsed := make([]*schema.Schema, 0, len(models))
	byName := make(map[string]*schema.Schema, len(models))

	for _, model := range models {
		stmt := &gorm.Statement{DB: c.db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parsing model %T: %w", model, err)
		}
		s := stmt.Schema
		if _, ok := byName[s.Table]; ok {
			continue
		}
		parsed = append(parsed, s)
		byName[s.Table] = s
	}

	// Topological sort on BelongsTo edges. Input order breaks ties so the
	// output is deterministic.
	sorted := make([]*schema.Schema, 0, len(parsed))
	visited := make(map[string]bool, len(parsed))
	var visit func(s *schema.Schema)
	visit = func(s *schema.Schema) {
		if visited[s.Table] {
			return
		}
		visited[s.Table] = true
		for _, rel := range s.Relationships.BelongsTo {
			if rel.FieldSchema == nil {
				continue
			}
			if parent, ok := byName[rel.FieldSchema.Table]; ok && parent.Table != s.Table {
				visit(parent)
			}
		}
		sorted = append(sorted, s)
	}
	for _, s := range parsed {
		visit(s)
	}

	return sorted, nil
}

// DatabaseColumns returns the persisted fields of a parsed schema, in
// declaration order, skipping association fields that have no column.
func DatabaseColumns(s *schema.Schema) []*schema.Field {
	columns := make([]*schema.Field, 0, len(s.Fields))
	seen := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		if field.DBName == "" || field.IgnoreMigration {
			continue
		}
		if seen[field.DBName] {
			continue
		}
		seen[field.DBName] = true
		columns = append(columns, field)
	}
	return columns
}

// isInternalTable reports whether a live table belongs to the migration
// engine or the database itself rather than the application schema.
// Those tables must never surface in a diff as tables to drop.
func isInternalTable(name string) bool {
	if name == "migration_records" || name == "schema_migrations" {
		return true
	}
	return strings.HasPrefix(name, "sqlite_") || strings.HasPrefix(name, "pg_")
}

// currentTable is the introspected shape of one live table.
type currentTable struct {
	Name    string
	Columns map[string]gorm.ColumnType
}

// getCurrentTables introspects the live database through the GORM
// migrator. The migration ledger itself is excluded from diffing.
func (c *SchemaComparer) getCurrentTables() (map[string]*currentTable, error) {
	migrator := c.db.Migrator()

	tables, err := migrator.GetTables()
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	current := make(map[string]*currentTable, len(tables))
	for _, name := range tables {
		if isInternalTable(name) {
			continue
		}
		columnTypes, err := migrator.ColumnTypes(name)
		if err != nil {
			return nil, fmt.Errorf("reading columns of %s: %w", name, err)
		}
		table := &currentTable{Name: name, Columns: make(map[string]gorm.ColumnType, len(columnTypes))}
		for _, col := range columnTypes {
			table.Columns[strings.ToLower(col.Name())] = col
		}
		current[name] = table
	}
	return current, nil
}

// compareSchemas produces the diff between live tables and desired model
// schemas. Column comparison is by name only: introspection reports
// dialect-specific type aliases, so type equality cannot be checked
// reliably across drivers.
func (c *SchemaComparer) compareSchemas(current map[string]*currentTable, desired []*schema.Schema) *SchemaDiff {
	diff := &SchemaDiff{}
	desiredByTable := make(map[string]*schema.Schema, len(desired))

	for _, s := range desired {
		desiredByTable[s.Table] = s
		table, exists := current[s.Table]
		if !exists {
			diff.TablesToCreate = append(diff.TablesToCreate, s)
			continue
		}

		tableDiff := TableDiff{Schema: s}
		declared := make(map[string]bool)
		for _, field := range DatabaseColumns(s) {
			declared[strings.ToLower(field.DBName)] = true
			if _, ok := table.Columns[strings.ToLower(field.DBName)]; !ok {
				tableDiff.ColumnsToAdd = append(tableDiff.ColumnsToAdd, field)
			}
		}
		for name := range table.Columns {
			if !declared[name] {
				tableDiff.ColumnsToDrop = append(tableDiff.ColumnsToDrop, name)
			}
		}
		sort.Strings(tableDiff.ColumnsToDrop)
		if !tableDiff.IsEmpty() {
			diff.TablesToModify = append(diff.TablesToModify, tableDiff)
		}
	}

	for name := range current {
		if _, ok := desiredByTable[name]; !ok {
			diff.TablesToDrop = append(diff.TablesToDrop, name)
		}
	}
	sort.Strings(diff.TablesToDrop)

	return diff
}
