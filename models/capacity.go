package models

import "time"

// ServiceCategory names a class of wash service a partner can run in a bay.
type ServiceCategory string

const (
	CategoryExteriorWash ServiceCategory = "exterior_wash"
	CategoryInteriorWash ServiceCategory = "interior_wash"
	CategoryFullService  ServiceCategory = "full_service"
	CategoryDetailing    ServiceCategory = "detailing"
)

// AllServiceCategories lists every category capacity can be declared for.
var AllServiceCategories = []ServiceCategory{
	CategoryExteriorWash,
	CategoryInteriorWash,
	CategoryFullService,
	CategoryDetailing,
}

// PartnerCapacity declares how many bays a partner can run concurrently per
// service category. BufferTimeMinutes mirrors the value on the partner's
// WeeklyAvailability; the two are saved together and must agree.
type PartnerCapacity struct {
	PartnerID          string                  `bson:"partnerId" json:"partnerId"`
	CapacityByCategory map[ServiceCategory]int `bson:"capacityByCategory" json:"capacityByCategory"`
	BufferTimeMinutes  int                     `bson:"bufferTimeMinutes" json:"bufferTimeMinutes"`
	UpdatedAt          time.Time               `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Bays returns the declared bay count for a category, zero when absent. A
// zero count means the partner does not offer that category.
func (p PartnerCapacity) Bays(category ServiceCategory) int {
	return p.CapacityByCategory[category]
}
