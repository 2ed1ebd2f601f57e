// Package repository is the typed access surface over the rental-listing
// schema: transactional multi-table writes, nested-relation reads and
// conjunctive search, with store errors classified into a small taxonomy.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// The error taxonomy surfaced to calling services. Nothing is retried or
// degraded here; callers own any retry policy.
var (
	// ErrNotFound marks reads that matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate marks uniqueness violations.
	ErrDuplicate = errors.New("duplicate key")
	// ErrForeignKey marks foreign-key violations.
	ErrForeignKey = errors.New("foreign key violation")
	// ErrInvalidInput marks caller mistakes caught before touching the
	// database, e.g. a malformed room UUID.
	ErrInvalidInput = errors.New("invalid input")
)

// classify maps a translated GORM error onto the taxonomy, keeping the
// driver message. Connectivity and other unclassified errors pass
// through unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	default:
		return err
	}
}
