package models

// Store represents a property-management agency branch. Stores are the
// tenant boundary: every room and listing belongs to exactly one store.
// Rows are created once and never deleted while referencing rows exist,
// so the foreign keys pointing here carry no cascade rule.
type Store struct {
	Base
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	BranchName  string `gorm:"type:varchar(255)" json:"branch_name"`
	PhoneNumber string `gorm:"type:varchar(32)" json:"phone_number"`

	Rooms    []Room    `gorm:"foreignKey:StoreID" json:"rooms,omitempty"`
	Listings []Listing `gorm:"foreignKey:StoreID" json:"listings,omitempty"`
}

func (Store) TableName() string {
	return "stores"
}
