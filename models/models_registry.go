package models

// ModelTypeRegistry lists every persisted model by name for the
// migration tooling. Dependency ordering lives in All.
var ModelTypeRegistry = map[string]interface{}{
	"Store":                Store{},
	"Building":             Building{},
	"Location":             Location{},
	"Route":                Route{},
	"Translation":          Translation{},
	"Room":                 Room{},
	"Listing":              Listing{},
	"Cost":                 Cost{},
	"Monthly":              Monthly{},
	"Image":                Image{},
	"Facility":             Facility{},
	"Condition":            Condition{},
	"Campaign":             Campaign{},
	"Dealing":              Dealing{},
	"AdvertisementFee":     AdvertisementFee{},
	"AdvertisementReprint": AdvertisementReprint{},
}

// All returns the registered models in dependency order, parents first.
// Map iteration order is random, so the ordering lives here.
func All() []interface{} {
	return []interface{}{
		Store{},
		Building{},
		Location{},
		Route{},
		Translation{},
		Room{},
		Listing{},
		Cost{},
		Monthly{},
		Image{},
		Facility{},
		Condition{},
		Campaign{},
		Dealing{},
		AdvertisementFee{},
		AdvertisementReprint{},
	}
}
