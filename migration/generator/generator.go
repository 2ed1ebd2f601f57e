// Package generator turns a schema diff into ordered DDL statements.
package generator

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm/schema"

	"rental-schema/migration/diff"
)

// UpSQL emits the forward DDL for a diff: table creations in dependency
// order (parents first), their secondary indexes, column additions, then
// drops last.
func UpSQL(d *diff.SchemaDiff) []string {
	var statements []string

	for _, s := range d.TablesToCreate {
		statements = append(statements, createTableSQL(s))
		statements = append(statements, createIndexSQL(s)...)
	}

	for i := range d.TablesToModify {
		td := &d.TablesToModify[i]
		for _, field := range td.ColumnsToAdd {
			statements = append(statements,
				fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", td.Schema.Table, columnSQL(field)))
		}
		for _, name := range td.ColumnsToDrop {
			statements = append(statements,
				fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", td.Schema.Table, name))
		}
	}

	for _, table := range d.TablesToDrop {
		statements = append(statements, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table))
	}

	return statements
}

// DownSQL emits the reverse DDL: created tables are dropped children
// first, added columns are removed. Dropped tables and dropped columns
// cannot be restored from the diff alone and are left to hand-editing.
func DownSQL(d *diff.SchemaDiff) []string {
	var statements []string

	for i := range d.TablesToModify {
		td := &d.TablesToModify[i]
		for _, field := range td.ColumnsToAdd {
			statements = append(statements,
				fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", td.Schema.Table, field.DBName))
		}
	}

	for i := len(d.TablesToCreate) - 1; i >= 0; i-- {
		statements = append(statements,
			fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", d.TablesToCreate[i].Table))
	}

	return statements
}

func createTableSQL(s *schema.Schema) string {
	var defs []string

	for _, field := range diff.DatabaseColumns(s) {
		defs = append(defs, columnSQL(field))
	}

	for _, rel := range s.Relationships.BelongsTo {
		fk := foreignKeySQL(rel)
		if fk != "" {
			defs = append(defs, fk)
		}
	}

	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", s.Table, strings.Join(defs, ",\n\t"))
}

func columnSQL(field *schema.Field) string {
	var b strings.Builder
	b.WriteString(field.DBName)
	b.WriteString(" ")
	b.WriteString(sqlType(field))

	if field.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if field.NotNull && !field.PrimaryKey {
		b.WriteString(" NOT NULL")
	}
	if field.Unique {
		b.WriteString(" UNIQUE")
	}
	if field.HasDefaultValue && field.DefaultValue != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(field.DefaultValue)
	}
	return b.String()
}

// sqlType maps a parsed field to a PostgreSQL column type. An explicit
// `type:` tag always wins.
func sqlType(field *schema.Field) string {
	if explicit, ok := field.TagSettings["TYPE"]; ok && explicit != "" {
		return explicit
	}

	switch field.DataType {
	case schema.Bool:
		return "boolean"
	case schema.Int, schema.Uint:
		if field.AutoIncrement && field.PrimaryKey {
			return "bigserial"
		}
		return "bigint"
	case schema.Float:
		return "numeric"
	case schema.String:
		if field.Size > 0 {
			return fmt.Sprintf("varchar(%d)", field.Size)
		}
		return "text"
	case schema.Time:
		return "timestamptz"
	case schema.Bytes:
		return "bytea"
	default:
		return string(field.DataType)
	}
}

func foreignKeySQL(rel *schema.Relationship) string {
	if rel.FieldSchema == nil || len(rel.References) == 0 {
		return ""
	}

	var foreign, primary []string
	for _, ref := range rel.References {
		if ref.ForeignKey == nil || ref.PrimaryKey == nil {
			continue
		}
		foreign = append(foreign, ref.ForeignKey.DBName)
		primary = append(primary, ref.PrimaryKey.DBName)
	}
	if len(foreign) == 0 {
		return ""
	}

	clause := fmt.Sprintf("CONSTRAINT fk_%s_%s FOREIGN KEY (%s) REFERENCES %s (%s)",
		rel.Schema.Table, strings.Join(foreign, "_"),
		strings.Join(foreign, ", "), rel.FieldSchema.Table, strings.Join(primary, ", "))

	if rule := onDeleteRule(rel); rule != "" {
		clause += " ON DELETE " + rule
	}
	return clause
}

// onDeleteRule pulls the OnDelete action out of the relation's
// `constraint:` tag, e.g. "OnDelete:CASCADE".
func onDeleteRule(rel *schema.Relationship) string {
	if rel.Field == nil {
		return ""
	}
	setting, ok := rel.Field.TagSettings["CONSTRAINT"]
	if !ok {
		return ""
	}
	for _, part := range strings.Split(setting, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(strings.ToUpper(part), "ONDELETE:") {
			return strings.TrimSpace(part[strings.Index(part, ":")+1:])
		}
	}
	return ""
}

func createIndexSQL(s *schema.Schema) []string {
	indexes := s.ParseIndexes()

	names := make([]string, 0, len(indexes))
	for name := range indexes {
		names = append(names, name)
	}
	sort.Strings(names)

	var statements []string
	for _, name := range names {
		idx := indexes[name]
		var columns []string
		for _, opt := range idx.Fields {
			if opt.Field != nil {
				columns = append(columns, opt.DBName)
			}
		}
		if len(columns) == 0 {
			continue
		}
		unique := ""
		if strings.EqualFold(idx.Class, "UNIQUE") || strings.EqualFold(idx.Option, "UNIQUE") {
			unique = "UNIQUE "
		}
		statements = append(statements, fmt.Sprintf("CREATE %sINDEX %s ON %s (%s)",
			unique, idx.Name, s.Table, strings.Join(columns, ", ")))
	}
	return statements
}
