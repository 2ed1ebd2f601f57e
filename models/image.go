package models

// Image is an ordered photo or floor-plan reference for a listing.
// OrderNum ascending with id as tiebreaker preserves insertion order.
type Image struct {
	Base
	ListingID     uint   `gorm:"not null;index" json:"listing_id"`
	URL           string `gorm:"type:text;not null" json:"url"`
	ImageTypeCode string `gorm:"type:varchar(16)" json:"image_type_code"`
	OrderNum      int    `gorm:"not null;default:0;index" json:"order_num"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Image) TableName() string {
	return "images"
}
