package models

// Room represents an individually rentable unit inside a building.
// The UUID is the stable identity other bounded contexts reference; it is
// assigned by the creator, never generated here. Physical attributes
// (size, floor, layout) stay fixed across the listings opened for the room.
type Room struct {
	Base
	UUID           string  `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	BuildingID     uint    `gorm:"not null;index" json:"building_id"`
	StoreID        uint    `gorm:"not null;index" json:"store_id"`
	RoomNumber     string  `gorm:"type:varchar(32)" json:"room_number"`
	Size           float64 `gorm:"type:decimal(6,2)" json:"size"`
	DirectionCode  string  `gorm:"type:varchar(16)" json:"direction_code"`
	LayoutAmount   int     `json:"layout_amount"`
	LayoutTypeCode string  `gorm:"type:varchar(16)" json:"layout_type_code"`
	Floor          int     `json:"floor"`

	Building *Building `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"building,omitempty"`
	Store    *Store    `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Listings []Listing `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"listings,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}
