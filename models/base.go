package models

import "time"

// Base holds the columns shared by every table. Deletes are physical:
// listing history is preserved by flipping is_active, never by soft-delete
// markers, so there is no deleted_at column.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
