package models

// Translation carries the localized content of a building, one row per
// locale.
type Translation struct {
	Base
	BuildingID    uint   `gorm:"not null;uniqueIndex:idx_translations_building_locale" json:"building_id"`
	Locale        string `gorm:"type:varchar(8);not null;uniqueIndex:idx_translations_building_locale" json:"locale"`
	AddressDetail string `gorm:"type:varchar(255)" json:"address_detail"`
	Remarks       string `gorm:"type:text" json:"remarks"`
	SideNote      string `gorm:"type:text" json:"side_note"`
	Catchphrase   string `gorm:"type:varchar(255)" json:"catchphrase"`

	Building *Building `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Translation) TableName() string {
	return "translations"
}
