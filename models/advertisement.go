package models

// AdvertisementFee is coded advertising-fee metadata for a listing.
type AdvertisementFee struct {
	Base
	ListingID uint   `gorm:"not null;index" json:"listing_id"`
	Code      string `gorm:"type:varchar(16);not null" json:"code"`
	Amount    int    `gorm:"not null;default:0" json:"amount"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AdvertisementFee) TableName() string {
	return "advertisement_fees"
}

// AdvertisementReprint marks a listing for advertisement reprint handling.
type AdvertisementReprint struct {
	Base
	ListingID uint   `gorm:"not null;index" json:"listing_id"`
	Code      string `gorm:"type:varchar(16);not null" json:"code"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AdvertisementReprint) TableName() string {
	return "advertisement_reprints"
}
