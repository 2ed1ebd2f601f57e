package models

import "time"

// Listing is a rental offering for one room. A room accumulates listings
// over its lifetime; retiring an offer flips IsActive, it never deletes
// the row, so pricing and media history stay queryable.
type Listing struct {
	Base
	RoomID       uint       `gorm:"not null;index" json:"room_id"`
	StoreID      uint       `gorm:"not null;index" json:"store_id"`
	IsActive     bool       `gorm:"not null;default:false;index" json:"is_active"`
	PublishedAt  *time.Time `json:"published_at"`
	MoveInAt     *time.Time `json:"move_in_at"`
	NextUpdateAt *time.Time `json:"next_update_at"`

	Room  *Room  `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room,omitempty"`
	Store *Store `gorm:"foreignKey:StoreID" json:"store,omitempty"`

	Cost                  *Cost                  `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"cost,omitempty"`
	Monthly               *Monthly               `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"monthly,omitempty"`
	Images                []Image                `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Facilities            []Facility             `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"facilities,omitempty"`
	Conditions            []Condition            `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"conditions,omitempty"`
	Campaigns             []Campaign             `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"campaigns,omitempty"`
	Dealings              []Dealing              `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"dealings,omitempty"`
	AdvertisementFees     []AdvertisementFee     `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"advertisement_fees,omitempty"`
	AdvertisementReprints []AdvertisementReprint `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"advertisement_reprints,omitempty"`
}

func (Listing) TableName() string {
	return "listings"
}
