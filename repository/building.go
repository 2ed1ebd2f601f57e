package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rental-schema/models"
)

// BuildingRepository reads and writes buildings with their location,
// routes and translations.
type BuildingRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBuildingRepository(db *gorm.DB, log *zap.Logger) *BuildingRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &BuildingRepository{db: db, log: log}
}

// CreateBuildingInput is the write shape for one building and its
// physical-group children.
type CreateBuildingInput struct {
	Building     models.Building
	Location     *models.Location
	Routes       []models.Route
	Translations []models.Translation
}

// Create inserts the building and its children in one transaction.
func (r *BuildingRepository) Create(input *CreateBuildingInput) (*models.Building, error) {
	building := input.Building

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&building).Error; err != nil {
			return err
		}
		if input.Location != nil {
			input.Location.BuildingID = building.ID
			if err := tx.Create(input.Location).Error; err != nil {
				return err
			}
		}
		for i := range input.Routes {
			input.Routes[i].BuildingID = building.ID
		}
		if len(input.Routes) > 0 {
			if err := tx.Create(&input.Routes).Error; err != nil {
				return err
			}
		}
		for i := range input.Translations {
			input.Translations[i].BuildingID = building.ID
		}
		if len(input.Translations) > 0 {
			if err := tx.Create(&input.Translations).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	r.log.Info("created building", zap.Uint("building_id", building.ID), zap.String("name", building.Name))
	return &building, nil
}

// Get fetches a building with location, routes, translations and rooms
// preloaded.
func (r *BuildingRepository) Get(id uint) (*models.Building, error) {
	var building models.Building
	err := r.db.
		Preload("Location").
		Preload("Routes").
		Preload("Translations").
		Preload("Rooms").
		First(&building, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &building, nil
}

// Delete removes a building. The database cascades through rooms to
// listings and every listing-group row.
func (r *BuildingRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Building{}, id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	r.log.Info("deleted building", zap.Uint("building_id", id))
	return nil
}
