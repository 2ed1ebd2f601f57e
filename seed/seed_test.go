package seed_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rental-schema/models"
	"rental-schema/seed"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedPopulatesDataset(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, seed.Run(db, nil))

	assert.EqualValues(t, 1, count(t, db, &models.Store{}))
	assert.EqualValues(t, 2, count(t, db, &models.Building{}))
	assert.EqualValues(t, 2, count(t, db, &models.Location{}))
	assert.EqualValues(t, 3, count(t, db, &models.Route{}))
	assert.EqualValues(t, 3, count(t, db, &models.Translation{}))
	assert.EqualValues(t, 3, count(t, db, &models.Room{}))
	assert.EqualValues(t, 3, count(t, db, &models.Listing{}))
	assert.EqualValues(t, 3, count(t, db, &models.Cost{}))

	var active int64
	require.NoError(t, db.Model(&models.Listing{}).Where("is_active = ?", true).Count(&active).Error)
	assert.EqualValues(t, 2, active)

	// The retired listing keeps its pricing rows as history.
	var retired models.Listing
	require.NoError(t, db.Preload("Cost").Where("is_active = ?", false).First(&retired).Error)
	require.NotNil(t, retired.Cost)
	assert.Equal(t, 72000, retired.Cost.Rent)
}

func TestSeedOnPopulatedDatabaseFails(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, seed.Run(db, nil))

	// Fixed room UUIDs collide with the first run instead of duplicating.
	err := seed.Run(db, nil)
	require.Error(t, err)

	assert.EqualValues(t, 3, count(t, db, &models.Room{}))
}
