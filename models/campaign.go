package models

// Campaign is a coded marketing promotion for a listing. The same
// campaign code cannot be attached to one listing twice.
type Campaign struct {
	Base
	ListingID uint   `gorm:"not null;uniqueIndex:idx_campaigns_code_listing" json:"listing_id"`
	Code      string `gorm:"type:varchar(16);not null;uniqueIndex:idx_campaigns_code_listing" json:"code"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
