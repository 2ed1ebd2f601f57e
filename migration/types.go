package migration

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Migration is one versioned DDL change set. Checksum is the sha256 of
// the migration file that produced it; the ledger copy is verified on
// every apply run.
type Migration struct {
	Version   string
	Name      string
	Checksum  string
	CreatedAt time.Time
	Up        func(*gorm.DB) error
	Down      func(*gorm.DB) error
}

// MigrationRecord is the ledger row written once per applied migration.
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Checksum  string    `gorm:"type:varchar(64);not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (MigrationRecord) TableName() string {
	return "migration_records"
}

// Checksum returns the hex sha256 of a migration file's contents.
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

var (
	globalMigrations = make([]*Migration, 0)
	registryMutex    sync.RWMutex
)

func RegisterMigration(migration *Migration) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	globalMigrations = append(globalMigrations, migration)
}

func GetRegisteredMigrations() []*Migration {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	migrations := make([]*Migration, len(globalMigrations))
	copy(migrations, globalMigrations)
	return migrations
}

func ResetMigrations() {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	globalMigrations = make([]*Migration, 0)
}

// ModelRegistry supplies the desired schema state to the diff/generate
// pipeline.
type ModelRegistry interface {
	GetModels() map[string]interface{}
}

// GlobalModelRegistry is set once by the CLI main before commands run.
var GlobalModelRegistry ModelRegistry

func ValidateRegistry() error {
	if GlobalModelRegistry == nil {
		return fmt.Errorf("no model registry provided: implement migration.ModelRegistry and set it in your main")
	}
	return nil
}
