package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rental-schema/models"
)

// ListingRepository reads and writes listings together with their
// dependent rows.
type ListingRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewListingRepository(db *gorm.DB, log *zap.Logger) *ListingRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &ListingRepository{db: db, log: log}
}

// CreateListingInput is the write shape for one listing and its children.
// Child rows get their listing_id assigned here; any value the caller
// put there is overwritten.
type CreateListingInput struct {
	Listing               models.Listing
	Cost                  *models.Cost
	Monthly               *models.Monthly
	Images                []models.Image
	Facilities            []models.Facility
	Conditions            []models.Condition
	Campaigns             []models.Campaign
	Dealings              []models.Dealing
	AdvertisementFees     []models.AdvertisementFee
	AdvertisementReprints []models.AdvertisementReprint
}

// Create inserts the listing and every child row in one transaction.
// Either all rows are visible afterwards or none are; a constraint
// violation anywhere rolls the whole write back.
func (r *ListingRepository) Create(input *CreateListingInput) (*models.Listing, error) {
	listing := input.Listing

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}

		if input.Cost != nil {
			input.Cost.ListingID = listing.ID
			if err := tx.Create(input.Cost).Error; err != nil {
				return err
			}
		}
		if input.Monthly != nil {
			input.Monthly.ListingID = listing.ID
			if err := tx.Create(input.Monthly).Error; err != nil {
				return err
			}
		}
		for i := range input.Images {
			input.Images[i].ListingID = listing.ID
		}
		if len(input.Images) > 0 {
			if err := tx.Create(&input.Images).Error; err != nil {
				return err
			}
		}
		for i := range input.Facilities {
			input.Facilities[i].ListingID = listing.ID
		}
		if len(input.Facilities) > 0 {
			if err := tx.Create(&input.Facilities).Error; err != nil {
				return err
			}
		}
		for i := range input.Conditions {
			input.Conditions[i].ListingID = listing.ID
		}
		if len(input.Conditions) > 0 {
			if err := tx.Create(&input.Conditions).Error; err != nil {
				return err
			}
		}
		for i := range input.Campaigns {
			input.Campaigns[i].ListingID = listing.ID
		}
		if len(input.Campaigns) > 0 {
			if err := tx.Create(&input.Campaigns).Error; err != nil {
				return err
			}
		}
		for i := range input.Dealings {
			input.Dealings[i].ListingID = listing.ID
		}
		if len(input.Dealings) > 0 {
			if err := tx.Create(&input.Dealings).Error; err != nil {
				return err
			}
		}
		for i := range input.AdvertisementFees {
			input.AdvertisementFees[i].ListingID = listing.ID
		}
		if len(input.AdvertisementFees) > 0 {
			if err := tx.Create(&input.AdvertisementFees).Error; err != nil {
				return err
			}
		}
		for i := range input.AdvertisementReprints {
			input.AdvertisementReprints[i].ListingID = listing.ID
		}
		if len(input.AdvertisementReprints) > 0 {
			if err := tx.Create(&input.AdvertisementReprints).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	r.log.Info("created listing",
		zap.Uint("listing_id", listing.ID),
		zap.Uint("room_id", listing.RoomID))
	return &listing, nil
}

// Get fetches one listing with every relation preloaded, down through
// Room -> Building -> {Location, Routes, Translations}. Preloads are
// batched by key, so round-trips stay bounded by relation depth, not
// result size.
func (r *ListingRepository) Get(id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.preloaded(r.db).First(&listing, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &listing, nil
}

func (r *ListingRepository) preloaded(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Room").
		Preload("Room.Building").
		Preload("Room.Building.Location").
		Preload("Room.Building.Routes").
		Preload("Room.Building.Translations").
		Preload("Store").
		Preload("Cost").
		Preload("Monthly").
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_num ASC, id ASC")
		}).
		Preload("Facilities").
		Preload("Conditions").
		Preload("Campaigns").
		Preload("Dealings").
		Preload("AdvertisementFees").
		Preload("AdvertisementReprints")
}

// SearchQuery composes conjunctive filters: inclusive range bounds on
// rent and room size, exact matches on the coded fields. Nil means
// "no constraint".
type SearchQuery struct {
	MinRent        *int
	MaxRent        *int
	MinSize        *float64
	MaxSize        *float64
	PrefectureCode string
	CityCode       string
	StoreID        uint
	ActiveOnly     bool
}

// Search returns listings matching every given filter, with room,
// building and cost preloaded.
func (r *ListingRepository) Search(q *SearchQuery) ([]models.Listing, error) {
	// costs is outer-joined: a listing without pricing is still findable
	// unless a rent bound filters it out.
	tx := r.db.
		Select("listings.*").
		Joins("JOIN rooms ON rooms.id = listings.room_id").
		Joins("JOIN buildings ON buildings.id = rooms.building_id").
		Joins("LEFT JOIN costs ON costs.listing_id = listings.id")

	if q.MinRent != nil {
		tx = tx.Where("costs.rent >= ?", *q.MinRent)
	}
	if q.MaxRent != nil {
		tx = tx.Where("costs.rent <= ?", *q.MaxRent)
	}
	if q.MinSize != nil {
		tx = tx.Where("rooms.size >= ?", *q.MinSize)
	}
	if q.MaxSize != nil {
		tx = tx.Where("rooms.size <= ?", *q.MaxSize)
	}
	if q.PrefectureCode != "" {
		tx = tx.Where("buildings.prefecture_code = ?", q.PrefectureCode)
	}
	if q.CityCode != "" {
		tx = tx.Where("buildings.city_code = ?", q.CityCode)
	}
	if q.StoreID != 0 {
		tx = tx.Where("listings.store_id = ?", q.StoreID)
	}
	if q.ActiveOnly {
		tx = tx.Where("listings.is_active = ?", true)
	}

	var listings []models.Listing
	err := tx.
		Preload("Room").
		Preload("Room.Building").
		Preload("Cost").
		Order("listings.id ASC").
		Find(&listings).Error
	if err != nil {
		return nil, classify(err)
	}
	return listings, nil
}

// Deactivate retires a listing from sale. It is an update, never a
// delete: cost, image and facility rows stay untouched.
func (r *ListingRepository) Deactivate(id uint) error {
	return r.setActive(id, false)
}

// Activate puts a listing back on sale.
func (r *ListingRepository) Activate(id uint) error {
	return r.setActive(id, true)
}

func (r *ListingRepository) setActive(id uint, active bool) error {
	result := r.db.Model(&models.Listing{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	r.log.Info("toggled listing", zap.Uint("listing_id", id), zap.Bool("is_active", active))
	return nil
}

// Delete removes a listing; the database cascades to every dependent
// listing-group row.
func (r *ListingRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Listing{}, id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
