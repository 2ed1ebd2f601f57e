package diff

import (
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaDiff is the difference between the live database schema and the
// desired state declared by the models. Tables are dependency-ordered:
// parents before children in TablesToCreate, so emitted DDL can create
// foreign keys inline.
type SchemaDiff struct {
	TablesToCreate []*schema.Schema
	TablesToDrop   []string
	TablesToModify []TableDiff
}

// TableDiff is the column-level difference for one existing table.
type TableDiff struct {
	Schema          *schema.Schema
	ColumnsToAdd    []*schema.Field
	ColumnsToDrop   []string
	ColumnsToModify []*schema.Field
}

func (d *TableDiff) IsEmpty() bool {
	return len(d.ColumnsToAdd) == 0 &&
		len(d.ColumnsToDrop) == 0 &&
		len(d.ColumnsToModify) == 0
}

// IsEmpty reports whether the diff describes no change at all, which
// makes generate a no-op and a re-run idempotent.
func (d *SchemaDiff) IsEmpty() bool {
	if len(d.TablesToCreate) > 0 || len(d.TablesToDrop) > 0 {
		return false
	}
	for i := range d.TablesToModify {
		if !d.TablesToModify[i].IsEmpty() {
			return false
		}
	}
	return true
}

// SchemaComparer diffs the live schema against parsed model schemas.
type SchemaComparer struct {
	db *gorm.DB
}

func NewSchemaComparer(db *gorm.DB) *SchemaComparer {
	return &SchemaComparer{db: db}
}

// Compare diffs the current database schema against the given models.
func (c *SchemaComparer) Compare(models ...interface{}) (*SchemaDiff, error) {
	current, err := c.getCurrentTables()
	if err != nil {
		return nil, err
	}

	desired, err := c.GetModelSchemas(models...)
	if err != nil {
		return nil, err
	}

	return c.compareSchemas(current, desired), nil
}
