// Package seed loads a deterministic development dataset through the
// repository layer, exercising the same transactional paths production
// callers use.
package seed

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rental-schema/models"
	"rental-schema/repository"
)

// Fixed room UUIDs so reseeding an empty database always produces the
// same identities. Seeding a non-empty database fails on the unique
// index instead of duplicating rows.
var roomUUIDs = []string{
	"0b5c9f0e-6a1d-4a5f-9c3e-b10a54a2f101",
	"1c6da01f-7b2e-4b60-8d4f-c21b65b3a202",
	"2d7eb120-8c3f-4c71-9e50-d32c76c4b303",
}

// Run inserts the sample dataset: one store, two buildings with their
// physical group, three rooms, and listings in both active and retired
// states.
func Run(db *gorm.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	stores := repository.NewStoreRepository(db, log)
	buildings := repository.NewBuildingRepository(db, log)
	rooms := repository.NewRoomRepository(db, log)
	listings := repository.NewListingRepository(db, log)

	store := &models.Store{Name: "Sakura Housing", BranchName: "Shibuya", PhoneNumber: "03-0000-0000"}
	if err := stores.Create(store); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	tower, err := buildings.Create(&repository.CreateBuildingInput{
		Building: models.Building{
			Name:              "Tokyo Central Tower",
			BuildingTypeCode:  "mansion",
			StructureTypeCode: "rc",
			BuiltYear:         2015,
			BuiltMonth:        4,
			MaxFloor:          24,
			PrefectureCode:    "13",
			CityCode:          "101",
		},
		Location: &models.Location{Longitude: 139.7016, Latitude: 35.6580},
		Routes: []models.Route{
			{StationCode: "1130205", RailroadCode: "11302", TransportTypeCode: "walk", Minutes: 5},
			{StationCode: "1130208", RailroadCode: "11302", TransportTypeCode: "walk", Minutes: 12},
		},
		Translations: []models.Translation{
			{Locale: "ja", AddressDetail: "東京都渋谷区1-2-3", Catchphrase: "駅徒歩5分"},
			{Locale: "en", AddressDetail: "1-2-3 Shibuya, Tokyo", Catchphrase: "5 min from the station"},
		},
	})
	if err != nil {
		return fmt.Errorf("seeding building: %w", err)
	}

	annex, err := buildings.Create(&repository.CreateBuildingInput{
		Building: models.Building{
			Name:              "Yokohama Bay Annex",
			BuildingTypeCode:  "apartment",
			StructureTypeCode: "wood",
			BuiltYear:         1998,
			BuiltMonth:        10,
			MaxFloor:          3,
			PrefectureCode:    "14",
			CityCode:          "100",
		},
		Location: &models.Location{Longitude: 139.6380, Latitude: 35.4437},
		Routes: []models.Route{
			{StationCode: "1140101", RailroadCode: "11401", TransportTypeCode: "bus", Minutes: 8},
		},
		Translations: []models.Translation{
			{Locale: "ja", AddressDetail: "神奈川県横浜市4-5-6"},
		},
	})
	if err != nil {
		return fmt.Errorf("seeding building: %w", err)
	}

	seedRooms := []models.Room{
		{UUID: roomUUIDs[0], BuildingID: tower.ID, StoreID: store.ID, RoomNumber: "1201", Size: 45.5, DirectionCode: "se", LayoutAmount: 1, LayoutTypeCode: "ldk", Floor: 12},
		{UUID: roomUUIDs[1], BuildingID: tower.ID, StoreID: store.ID, RoomNumber: "803", Size: 30.2, DirectionCode: "s", LayoutAmount: 1, LayoutTypeCode: "k", Floor: 8},
		{UUID: roomUUIDs[2], BuildingID: annex.ID, StoreID: store.ID, RoomNumber: "102", Size: 52.0, DirectionCode: "sw", LayoutAmount: 2, LayoutTypeCode: "ldk", Floor: 1},
	}
	for i := range seedRooms {
		if err := rooms.Create(&seedRooms[i]); err != nil {
			return fmt.Errorf("seeding room %s: %w", seedRooms[i].RoomNumber, err)
		}
	}

	now := time.Now()
	active := []repository.CreateListingInput{
		{
			Listing: models.Listing{RoomID: seedRooms[0].ID, StoreID: store.ID, IsActive: true, PublishedAt: &now},
			Cost:    &models.Cost{Rent: 120000, ManagementFee: 8000, Deposit: 120000, Gratuity: 120000, RenewalFee: 120000, RequiresInsurance: true},
			Monthly: &models.Monthly{DayCost: 5000, CleaningCost: 15000, BedCost: 3000, Fee: 10000},
			Images: []models.Image{
				{URL: "https://img.example.com/1201/exterior.jpg", ImageTypeCode: "photo", OrderNum: 1},
				{URL: "https://img.example.com/1201/floorplan.png", ImageTypeCode: "floorplan", OrderNum: 2},
			},
			Facilities: []models.Facility{{Code: "elevator"}, {Code: "autolock"}},
			Conditions: []models.Condition{{Code: "earthquake_resistant"}},
			Campaigns:  []models.Campaign{{Code: "no_gratuity_month"}},
			Dealings:   []models.Dealing{{Code: "brokerage"}},
			AdvertisementFees: []models.AdvertisementFee{
				{Code: "standard", Amount: 10000},
			},
		},
		{
			Listing:    models.Listing{RoomID: seedRooms[2].ID, StoreID: store.ID, IsActive: true, PublishedAt: &now},
			Cost:       &models.Cost{Rent: 89000, ManagementFee: 5000, Deposit: 89000},
			Images:     []models.Image{{URL: "https://img.example.com/102/exterior.jpg", ImageTypeCode: "photo", OrderNum: 1}},
			Facilities: []models.Facility{{Code: "parking"}},
			Dealings:   []models.Dealing{{Code: "agency"}},
		},
	}
	for i := range active {
		if _, err := listings.Create(&active[i]); err != nil {
			return fmt.Errorf("seeding listing: %w", err)
		}
	}

	// One retired listing, kept with its cost rows as history.
	retired, err := listings.Create(&repository.CreateListingInput{
		Listing: models.Listing{RoomID: seedRooms[1].ID, StoreID: store.ID, IsActive: true},
		Cost:    &models.Cost{Rent: 72000, ManagementFee: 4000},
		Images:  []models.Image{{URL: "https://img.example.com/803/exterior.jpg", ImageTypeCode: "photo", OrderNum: 1}},
	})
	if err != nil {
		return fmt.Errorf("seeding listing: %w", err)
	}
	if err := listings.Deactivate(retired.ID); err != nil {
		return fmt.Errorf("retiring seeded listing: %w", err)
	}

	log.Info("seed complete",
		zap.Int("buildings", 2),
		zap.Int("rooms", len(seedRooms)),
		zap.Int("listings", 3))
	return nil
}
