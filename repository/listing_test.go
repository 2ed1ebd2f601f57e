package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rental-schema/models"
	"rental-schema/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

type fixture struct {
	db        *gorm.DB
	stores    *repository.StoreRepository
	buildings *repository.BuildingRepository
	rooms     *repository.RoomRepository
	listings  *repository.ListingRepository

	store *models.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)
	log := zap.NewNop()

	f := &fixture{
		db:        db,
		stores:    repository.NewStoreRepository(db, log),
		buildings: repository.NewBuildingRepository(db, log),
		rooms:     repository.NewRoomRepository(db, log),
		listings:  repository.NewListingRepository(db, log),
	}

	f.store = &models.Store{Name: "store"}
	require.NoError(t, f.stores.Create(f.store))
	return f
}

func (f *fixture) createRoom(t *testing.T, building *models.Building, number string, size float64) *models.Room {
	t.Helper()
	room := &models.Room{
		UUID:       uuid.NewString(),
		BuildingID: building.ID,
		StoreID:    f.store.ID,
		RoomNumber: number,
		Size:       size,
	}
	require.NoError(t, f.rooms.Create(room))
	return room
}

func (f *fixture) createBuilding(t *testing.T, name, prefecture, city string) *models.Building {
	t.Helper()
	building, err := f.buildings.Create(&repository.CreateBuildingInput{
		Building: models.Building{Name: name, PrefectureCode: prefecture, CityCode: city},
	})
	require.NoError(t, err)
	return building
}

// The end-to-end scenario: building in prefecture 13, a 45.5 m2 room,
// an active listing at 120000 yen. The nested fetch must surface both
// the rent and the building code.
func TestListingNestedFetchScenario(t *testing.T) {
	f := newFixture(t)

	building, err := f.buildings.Create(&repository.CreateBuildingInput{
		Building: models.Building{Name: "Tokyo Central Tower", PrefectureCode: "13", CityCode: "101"},
		Location: &models.Location{Longitude: 139.7016, Latitude: 35.6580},
	})
	require.NoError(t, err)

	room := f.createRoom(t, building, "1201", 45.5)

	created, err := f.listings.Create(&repository.CreateListingInput{
		Listing: models.Listing{RoomID: room.ID, StoreID: f.store.ID, IsActive: true},
		Cost:    &models.Cost{Rent: 120000},
	})
	require.NoError(t, err)

	got, err := f.listings.Get(created.ID)
	require.NoError(t, err)

	require.NotNil(t, got.Cost)
	assert.Equal(t, 120000, got.Cost.Rent)
	require.NotNil(t, got.Room)
	require.NotNil(t, got.Room.Building)
	assert.Equal(t, "13", got.Room.Building.PrefectureCode)
	require.NotNil(t, got.Room.Building.Location)
	assert.InDelta(t, 35.6580, got.Room.Building.Location.Latitude, 1e-9)
}

func TestListingCreateIsAtomic(t *testing.T) {
	f := newFixture(t)
	building := f.createBuilding(t, "atomic", "13", "101")
	room := f.createRoom(t, building, "101", 30)

	// The duplicate campaign code violates the (code, listing_id) unique
	// index after the listing and cost rows were inserted: everything
	// must roll back.
	_, err := f.listings.Create(&repository.CreateListingInput{
		Listing: models.Listing{RoomID: room.ID, StoreID: f.store.ID},
		Cost:    &models.Cost{Rent: 100000},
		Campaigns: []models.Campaign{
			{Code: "free_rent"},
			{Code: "free_rent"},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	var listings, costs, campaigns int64
	require.NoError(t, f.db.Model(&models.Listing{}).Count(&listings).Error)
	require.NoError(t, f.db.Model(&models.Cost{}).Count(&costs).Error)
	require.NoError(t, f.db.Model(&models.Campaign{}).Count(&campaigns).Error)
	assert.Zero(t, listings)
	assert.Zero(t, costs)
	assert.Zero(t, campaigns)
}

func TestListingDeactivateKeepsChildren(t *testing.T) {
	f := newFixture(t)
	building := f.createBuilding(t, "toggle", "13", "101")
	room := f.createRoom(t, building, "101", 30)

	created, err := f.listings.Create(&repository.CreateListingInput{
		Listing: models.Listing{RoomID: room.ID, StoreID: f.store.ID, IsActive: true},
		Cost:    &models.Cost{Rent: 95000},
		Images: []models.Image{
			{URL: "a.jpg", OrderNum: 1},
			{URL: "b.jpg", OrderNum: 2},
		},
		Facilities: []models.Facility{{Code: "elevator"}},
	})
	require.NoError(t, err)

	require.NoError(t, f.listings.Deactivate(created.ID))

	got, err := f.listings.Get(created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	require.NotNil(t, got.Cost)
	assert.Equal(t, 95000, got.Cost.Rent)
	assert.Len(t, got.Images, 2)
	assert.Len(t, got.Facilities, 1)

	require.NoError(t, f.listings.Activate(created.ID))
	got, err = f.listings.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestListingImagesPreserveOrder(t *testing.T) {
	f := newFixture(t)
	building := f.createBuilding(t, "order", "13", "101")
	room := f.createRoom(t, building, "101", 30)

	created, err := f.listings.Create(&repository.CreateListingInput{
		Listing: models.Listing{RoomID: room.ID, StoreID: f.store.ID},
		Cost:    &models.Cost{Rent: 60000},
		Images: []models.Image{
			{URL: "second.jpg", OrderNum: 2},
			{URL: "first.jpg", OrderNum: 1},
			{URL: "third.jpg", OrderNum: 3},
		},
	})
	require.NoError(t, err)

	got, err := f.listings.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 3)
	assert.Equal(t, "first.jpg", got.Images[0].URL)
	assert.Equal(t, "second.jpg", got.Images[1].URL)
	assert.Equal(t, "third.jpg", got.Images[2].URL)
}

func TestListingSearchConjunctiveFilters(t *testing.T) {
	f := newFixture(t)
	tokyo := f.createBuilding(t, "tokyo", "13", "101")
	yokohama := f.createBuilding(t, "yokohama", "14", "100")

	cheapSmall := f.createRoom(t, tokyo, "201", 22.0)
	bigTokyo := f.createRoom(t, tokyo, "1201", 45.5)
	bigYokohama := f.createRoom(t, yokohama, "102", 52.0)

	mustListing := func(room *models.Room, rent int, active bool) *models.Listing {
		created, err := f.listings.Create(&repository.CreateListingInput{
			Listing: models.Listing{RoomID: room.ID, StoreID: f.store.ID, IsActive: active},
			Cost:    &models.Cost{Rent: rent},
		})
		require.NoError(t, err)
		return created
	}

	mustListing(cheapSmall, 65000, true)
	target := mustListing(bigTokyo, 120000, true)
	mustListing(bigYokohama, 110000, true)
	mustListing(bigTokyo, 130000, false) // retired listing on the same room

	minRent, maxRent := 100000, 125000
	minSize := 40.0
	results, err := f.listings.Search(&repository.SearchQuery{
		MinRent:        &minRent,
		MaxRent:        &maxRent,
		MinSize:        &minSize,
		PrefectureCode: "13",
		ActiveOnly:     true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, target.ID, results[0].ID)
	require.NotNil(t, results[0].Cost)
	assert.Equal(t, 120000, results[0].Cost.Rent)

	// Inclusive bounds: exact rent match stays in.
	exact := 120000
	results, err = f.listings.Search(&repository.SearchQuery{MinRent: &exact, MaxRent: &exact})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, target.ID, results[0].ID)
}

func TestListingSearchWithoutCostRow(t *testing.T) {
	f := newFixture(t)
	building := f.createBuilding(t, "no-cost", "13", "101")
	room := f.createRoom(t, building, "101", 30)

	// Cost is optional at creation time; an unpriced listing must still
	// turn up in an unfiltered search.
	created, err := f.listings.Create(&repository.CreateListingInput{
		Listing: models.Listing{RoomID: room.ID, StoreID: f.store.ID, IsActive: true},
	})
	require.NoError(t, err)

	results, err := f.listings.Search(&repository.SearchQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0].ID)
	assert.Nil(t, results[0].Cost)

	// A rent bound excludes it: no price, no match.
	minRent := 1
	results, err = f.listings.Search(&repository.SearchQuery{MinRent: &minRent})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListingDeleteCascades(t *testing.T) {
	f := newFixture(t)
	building := f.createBuilding(t, "delete", "13", "101")
	room := f.createRoom(t, building, "101", 30)

	created, err := f.listings.Create(&repository.CreateListingInput{
		Listing:    models.Listing{RoomID: room.ID, StoreID: f.store.ID},
		Cost:       &models.Cost{Rent: 70000},
		Facilities: []models.Facility{{Code: "parking"}},
	})
	require.NoError(t, err)

	require.NoError(t, f.listings.Delete(created.ID))

	var costs, facilities int64
	require.NoError(t, f.db.Model(&models.Cost{}).Count(&costs).Error)
	require.NoError(t, f.db.Model(&models.Facility{}).Count(&facilities).Error)
	assert.Zero(t, costs)
	assert.Zero(t, facilities)

	_, err = f.listings.Get(created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListingGetNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.listings.Get(12345)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, f.listings.Deactivate(12345), repository.ErrNotFound)
	assert.ErrorIs(t, f.listings.Delete(12345), repository.ErrNotFound)
}
