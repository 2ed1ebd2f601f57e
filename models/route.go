package models

// Route is one transportation-access record for a building. A building
// near several stations has one row per station.
type Route struct {
	Base
	BuildingID        uint   `gorm:"not null;index" json:"building_id"`
	StationCode       string `gorm:"type:varchar(16);not null" json:"station_code"`
	RailroadCode      string `gorm:"type:varchar(16)" json:"railroad_code"`
	TransportTypeCode string `gorm:"type:varchar(16)" json:"transport_type_code"`
	Minutes           int    `gorm:"not null;default:0" json:"minutes"`

	Building *Building `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Route) TableName() string {
	return "routes"
}
