package models

// Monthly is the monthly-rental-option pricing of a listing. Same
// cardinality decision as Cost: one row per listing.
type Monthly struct {
	Base
	ListingID    uint `gorm:"uniqueIndex;not null" json:"listing_id"`
	DayCost      int  `gorm:"not null;default:0" json:"day_cost"`
	CleaningCost int  `gorm:"not null;default:0" json:"cleaning_cost"`
	BedCost      int  `gorm:"not null;default:0" json:"bed_cost"`
	Fee          int  `gorm:"not null;default:0" json:"fee"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Monthly) TableName() string {
	return "monthlies"
}
