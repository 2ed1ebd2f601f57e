// Package driver applies migrations against a live database: one
// transaction per migration, a checksum-verified ledger, halt on first
// failure.
package driver

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rental-schema/migration"
)

// ErrChecksumMismatch marks a previously applied migration whose file no
// longer hashes to the recorded checksum. The file was edited after being
// applied somewhere; deployment must halt rather than proceed.
type ErrChecksumMismatch struct {
	Version  string
	Name     string
	Recorded string
	Actual   string
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("checksum mismatch for applied migration %s (%s): ledger has %s, file hashes to %s",
		e.Version, e.Name, e.Recorded, e.Actual)
}

type Migrator struct {
	db         *gorm.DB
	log        *zap.Logger
	migrations []*migration.Migration
}

func NewMigrator(db *gorm.DB, log *zap.Logger) *Migrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Migrator{
		db:         db,
		log:        log,
		migrations: migration.GetRegisteredMigrations(),
	}
}

func (m *Migrator) Register(mig *migration.Migration) {
	m.migrations = append(m.migrations, mig)
}

func (m *Migrator) ensureLedger() error {
	return m.db.AutoMigrate(&migration.MigrationRecord{})
}

// AppliedRecords returns the ledger keyed by version.
func (m *Migrator) AppliedRecords() (map[string]migration.MigrationRecord, error) {
	if err := m.ensureLedger(); err != nil {
		return nil, fmt.Errorf("ensuring migration ledger: %w", err)
	}

	var records []migration.MigrationRecord
	if err := m.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("reading migration ledger: %w", err)
	}

	applied := make(map[string]migration.MigrationRecord, len(records))
	for _, record := range records {
		applied[record.Version] = record
	}
	return applied, nil
}

// verifyChecksums compares every already-applied migration against the
// ledger. A mismatch is fatal. A missing checksum on either side (a
// hand-registered migration, or a ledger row predating the checksum
// column) cannot be verified and is logged as a warning instead.
func (m *Migrator) verifyChecksums(applied map[string]migration.MigrationRecord) error {
	for _, mig := range m.migrations {
		record, ok := applied[mig.Version]
		if !ok || mig.Checksum == record.Checksum {
			continue
		}
		if mig.Checksum == "" || record.Checksum == "" {
			m.log.Warn("applied migration cannot be checksum-verified",
				zap.String("version", mig.Version),
				zap.String("name", mig.Name))
			continue
		}
		return &ErrChecksumMismatch{
			Version:  mig.Version,
			Name:     mig.Name,
			Recorded: record.Checksum,
			Actual:   mig.Checksum,
		}
	}
	return nil
}

// Up applies every pending migration in version order. Each migration
// runs in its own transaction together with its ledger insert; on failure
// the transaction rolls back and later migrations are not attempted.
// Running against an up-to-date database is a no-op.
func (m *Migrator) Up() error {
	applied, err := m.AppliedRecords()
	if err != nil {
		return err
	}

	if err := m.verifyChecksums(applied); err != nil {
		return err
	}

	for _, mig := range m.migrations {
		if _, ok := applied[mig.Version]; ok {
			continue
		}

		m.log.Info("applying migration",
			zap.String("version", mig.Version),
			zap.String("name", mig.Name))

		tx := m.db.Begin()
		if tx.Error != nil {
			return fmt.Errorf("starting transaction for %s: %w", mig.Version, tx.Error)
		}

		if err := mig.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %s (%s): %w", mig.Version, mig.Name, err)
		}

		record := migration.MigrationRecord{
			Version:   mig.Version,
			Name:      mig.Name,
			Checksum:  mig.Checksum,
			AppliedAt: time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", mig.Version, err)
		}

		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("committing migration %s: %w", mig.Version, err)
		}

		m.log.Info("applied migration", zap.String("version", mig.Version))
	}
	return nil
}

// Down rolls back the most recently applied migration, transactionally.
func (m *Migrator) Down() error {
	if err := m.ensureLedger(); err != nil {
		return fmt.Errorf("ensuring migration ledger: %w", err)
	}

	var lastRecord migration.MigrationRecord
	if err := m.db.Order("applied_at DESC").First(&lastRecord).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("reading migration ledger: %w", err)
	}

	var target *migration.Migration
	for _, mig := range m.migrations {
		if mig.Version == lastRecord.Version {
			target = mig
			break
		}
	}
	if target == nil {
		return fmt.Errorf("applied migration %s not found among loaded migrations", lastRecord.Version)
	}

	m.log.Info("rolling back migration",
		zap.String("version", target.Version),
		zap.String("name", target.Name))

	tx := m.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("starting transaction for rollback of %s: %w", target.Version, tx.Error)
	}
	if err := target.Down(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("rolling back migration %s: %w", target.Version, err)
	}
	if err := tx.Delete(&lastRecord).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("removing ledger row for %s: %w", target.Version, err)
	}
	return tx.Commit().Error
}

// Push force-syncs the database to the given models without touching the
// ledger. It may silently drop or alter columns to match the declared
// shape: development convenience only, never run it against data you
// cannot lose.
func Push(db *gorm.DB, log *zap.Logger, models ...interface{}) error {
	if log == nil {
		log = zap.NewNop()
	}
	log.Warn("pushing schema directly, bypassing migration history")
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("pushing schema: %w", err)
	}
	return nil
}
