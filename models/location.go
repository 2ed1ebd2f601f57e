package models

// Location holds the geographic coordinates of a building, one row per
// building.
type Location struct {
	Base
	BuildingID uint    `gorm:"uniqueIndex;not null" json:"building_id"`
	Longitude  float64 `gorm:"type:decimal(9,6)" json:"longitude"`
	Latitude   float64 `gorm:"type:decimal(9,6)" json:"latitude"`

	Building *Building `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Location) TableName() string {
	return "locations"
}
