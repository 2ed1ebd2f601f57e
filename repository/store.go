package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rental-schema/models"
)

// StoreRepository reads and writes stores. Stores are never deleted
// here: the schema restricts deletion while rooms or listings still
// reference the row.
type StoreRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStoreRepository(db *gorm.DB, log *zap.Logger) *StoreRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &StoreRepository{db: db, log: log}
}

func (r *StoreRepository) Create(store *models.Store) error {
	if err := r.db.Create(store).Error; err != nil {
		return classify(err)
	}
	r.log.Info("created store", zap.Uint("store_id", store.ID), zap.String("name", store.Name))
	return nil
}

func (r *StoreRepository) Get(id uint) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, id).Error; err != nil {
		return nil, classify(err)
	}
	return &store, nil
}
