package models

// Facility is a coded amenity (elevator, parking, ...) attached to a
// listing.
type Facility struct {
	Base
	ListingID  uint   `gorm:"not null;index" json:"listing_id"`
	Code       string `gorm:"type:varchar(16);not null" json:"code"`
	StatusCode string `gorm:"type:varchar(16)" json:"status_code"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Facility) TableName() string {
	return "facilities"
}
