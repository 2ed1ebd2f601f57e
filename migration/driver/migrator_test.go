package driver_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rental-schema/migration"
	"rental-schema/migration/driver"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func newMigrator(t *testing.T, db *gorm.DB) *driver.Migrator {
	t.Helper()
	migration.ResetMigrations()
	t.Cleanup(migration.ResetMigrations)
	return driver.NewMigrator(db, nil)
}

func createTableMigration(version, name, table, checksum string) *migration.Migration {
	return &migration.Migration{
		Version:   version,
		Name:      name,
		Checksum:  checksum,
		CreatedAt: time.Now(),
		Up: func(db *gorm.DB) error {
			return db.Exec(fmt.Sprintf("CREATE TABLE %s (id INTEGER PRIMARY KEY)", table)).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(fmt.Sprintf("DROP TABLE %s", table)).Error
		},
	}
}

func tableExists(t *testing.T, db *gorm.DB, table string) bool {
	t.Helper()
	var count int64
	err := db.Raw("SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count).Error
	require.NoError(t, err)
	return count == 1
}

func TestMigratorUpAppliesAndRecords(t *testing.T) {
	db := setupTestDB(t)
	migrator := newMigrator(t, db)
	migrator.Register(createTableMigration("20240315000001", "create_buildings", "buildings", "abc"))

	require.NoError(t, migrator.Up())
	assert.True(t, tableExists(t, db, "buildings"))

	var record migration.MigrationRecord
	require.NoError(t, db.Where("version = ?", "20240315000001").First(&record).Error)
	assert.Equal(t, "create_buildings", record.Name)
	assert.Equal(t, "abc", record.Checksum)
	assert.False(t, record.AppliedAt.IsZero())
}

func TestMigratorUpIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	migrator := newMigrator(t, db)
	migrator.Register(createTableMigration("20240315000001", "create_buildings", "buildings", "abc"))

	require.NoError(t, migrator.Up())
	// Second run: nothing pending, no error, no duplicate ledger row.
	require.NoError(t, migrator.Up())

	var count int64
	require.NoError(t, db.Model(&migration.MigrationRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMigratorUpChecksumMismatchIsFatal(t *testing.T) {
	db := setupTestDB(t)
	migrator := newMigrator(t, db)
	migrator.Register(createTableMigration("20240315000001", "create_buildings", "buildings", "original"))
	require.NoError(t, migrator.Up())

	// Same version reloaded with different content.
	edited := driver.NewMigrator(db, nil)
	edited.Register(createTableMigration("20240315000001", "create_buildings", "buildings", "edited"))
	edited.Register(createTableMigration("20240316000001", "create_rooms", "rooms", "def"))

	err := edited.Up()
	require.Error(t, err)

	var mismatch *driver.ErrChecksumMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "20240315000001", mismatch.Version)
	assert.Equal(t, "original", mismatch.Recorded)
	assert.Equal(t, "edited", mismatch.Actual)

	// Nothing after the mismatch ran.
	assert.False(t, tableExists(t, db, "rooms"))
}

func TestMigratorUpWarnsOnUnverifiableChecksum(t *testing.T) {
	db := setupTestDB(t)
	migrator := newMigrator(t, db)
	migrator.Register(createTableMigration("20240315000001", "create_buildings", "buildings", "original"))
	require.NoError(t, migrator.Up())

	// The same version re-registered without a checksum: nothing to
	// verify against, so the run continues with a warning.
	core, logs := observer.New(zapcore.WarnLevel)
	reloaded := driver.NewMigrator(db, zap.New(core))
	reloaded.Register(createTableMigration("20240315000001", "create_buildings", "buildings", ""))
	reloaded.Register(createTableMigration("20240316000001", "create_rooms", "rooms", "def"))

	require.NoError(t, reloaded.Up())
	assert.True(t, tableExists(t, db, "rooms"))

	warned := logs.FilterMessage("applied migration cannot be checksum-verified").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "20240315000001", warned[0].ContextMap()["version"])
}

func TestMigratorUpHaltsOnFailure(t *testing.T) {
	db := setupTestDB(t)
	migrator := newMigrator(t, db)

	migrator.Register(createTableMigration("20240315000001", "create_buildings", "buildings", "a"))
	migrator.Register(&migration.Migration{
		Version: "20240315000002",
		Name:    "broken",
		Up: func(db *gorm.DB) error {
			if err := db.Exec("CREATE TABLE partial (id INTEGER PRIMARY KEY)").Error; err != nil {
				return err
			}
			return fmt.Errorf("simulated failure")
		},
		Down: func(db *gorm.DB) error { return nil },
	})
	migrator.Register(createTableMigration("20240315000003", "create_rooms", "rooms", "c"))

	err := migrator.Up()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated failure")

	// First migration applied, failing one rolled back, later one never
	// attempted.
	assert.True(t, tableExists(t, db, "buildings"))
	assert.False(t, tableExists(t, db, "partial"))
	assert.False(t, tableExists(t, db, "rooms"))

	var count int64
	require.NoError(t, db.Model(&migration.MigrationRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMigratorDown(t *testing.T) {
	db := setupTestDB(t)
	migrator := newMigrator(t, db)
	migrator.Register(createTableMigration("20240315000001", "create_buildings", "buildings", "a"))
	migrator.Register(createTableMigration("20240315000002", "create_rooms", "rooms", "b"))

	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Down())

	assert.True(t, tableExists(t, db, "buildings"))
	assert.False(t, tableExists(t, db, "rooms"))

	var count int64
	require.NoError(t, db.Model(&migration.MigrationRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMigratorDownOnEmptyLedger(t *testing.T) {
	db := setupTestDB(t)
	migrator := newMigrator(t, db)
	assert.NoError(t, migrator.Down())
}

func TestPushCreatesTables(t *testing.T) {
	db := setupTestDB(t)

	type PushModel struct {
		ID   uint   `gorm:"primaryKey"`
		Name string `gorm:"type:varchar(64)"`
	}

	require.NoError(t, driver.Push(db, nil, &PushModel{}))
	assert.True(t, tableExists(t, db, "push_models"))

	// No ledger entry for pushed schema.
	assert.False(t, tableExists(t, db, "migration_records"))
}
