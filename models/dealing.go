package models

// Dealing is the coded transaction type of a listing (brokerage, agency,
// ...).
type Dealing struct {
	Base
	ListingID uint   `gorm:"not null;index" json:"listing_id"`
	Code      string `gorm:"type:varchar(16);not null" json:"code"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Dealing) TableName() string {
	return "dealings"
}
