package models

// Cost is the pricing of a listing. Strictly one row per listing
// (unique listing_id): price changes update this row, and pricing
// history across time lives in the succession of listings for a room.
type Cost struct {
	Base
	ListingID         uint `gorm:"uniqueIndex;not null" json:"listing_id"`
	Rent              int  `gorm:"not null" json:"rent"`
	ManagementFee     int  `gorm:"not null;default:0" json:"management_fee"`
	Deposit           int  `gorm:"not null;default:0" json:"deposit"`
	Gratuity          int  `gorm:"not null;default:0" json:"gratuity"`
	SecurityDeposit   int  `gorm:"not null;default:0" json:"security_deposit"`
	RenewalFee        int  `gorm:"not null;default:0" json:"renewal_fee"`
	RequiresInsurance bool `gorm:"not null;default:false" json:"requires_insurance"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Cost) TableName() string {
	return "costs"
}
