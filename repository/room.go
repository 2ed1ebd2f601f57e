package repository

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rental-schema/models"
)

// RoomRepository reads and writes rooms. Room identity (the UUID) is
// supplied by the caller; this layer validates the format but never
// generates one.
type RoomRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRoomRepository(db *gorm.DB, log *zap.Logger) *RoomRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoomRepository{db: db, log: log}
}

func (r *RoomRepository) Create(room *models.Room) error {
	if _, err := uuid.Parse(room.UUID); err != nil {
		return fmt.Errorf("%w: room uuid %q: %v", ErrInvalidInput, room.UUID, err)
	}
	if err := r.db.Create(room).Error; err != nil {
		return classify(err)
	}
	r.log.Info("created room", zap.Uint("room_id", room.ID), zap.String("uuid", room.UUID))
	return nil
}

func (r *RoomRepository) Get(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.
		Preload("Building").
		Preload("Building.Location").
		Preload("Store").
		First(&room, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &room, nil
}

// GetByUUID resolves the externally stable identity.
func (r *RoomRepository) GetByUUID(id string) (*models.Room, error) {
	var room models.Room
	err := r.db.
		Preload("Building").
		Preload("Building.Location").
		Where("uuid = ?", id).
		First(&room).Error
	if err != nil {
		return nil, classify(err)
	}
	return &room, nil
}

// Delete removes a room; the database cascades to its listings and
// transitively to every listing-group row.
func (r *RoomRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Room{}, id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
