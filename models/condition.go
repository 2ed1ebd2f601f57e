package models

// Condition is a coded structural property (earthquake-resistant, ...)
// of a listing, same shape as Facility.
type Condition struct {
	Base
	ListingID  uint   `gorm:"not null;index" json:"listing_id"`
	Code       string `gorm:"type:varchar(16);not null" json:"code"`
	StatusCode string `gorm:"type:varchar(16)" json:"status_code"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Condition) TableName() string {
	return "conditions"
}
