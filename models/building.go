package models

// Building represents a physical structure. Its attributes never change
// when listings for its rooms are created or retired. All *_code fields
// are short string keys into externally managed code tables.
type Building struct {
	Base
	Name              string `gorm:"type:varchar(255);not null" json:"name"`
	BuildingTypeCode  string `gorm:"type:varchar(16)" json:"building_type_code"`
	StructureTypeCode string `gorm:"type:varchar(16)" json:"structure_type_code"`
	BuiltYear         int    `json:"built_year"`
	BuiltMonth        int    `json:"built_month"`
	MaxFloor          int    `json:"max_floor"`
	PrefectureCode    string `gorm:"type:varchar(8);index" json:"prefecture_code"`
	CityCode          string `gorm:"type:varchar(8);index" json:"city_code"`

	// Cascade rules live on both sides of each relation: AutoMigrate
	// builds the constraint from the association declared here, generated
	// DDL reads the belongs-to tag on the child.
	Location     *Location     `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
	Routes       []Route       `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"routes,omitempty"`
	Translations []Translation `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
	Rooms        []Room        `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

func (Building) TableName() string {
	return "buildings"
}
