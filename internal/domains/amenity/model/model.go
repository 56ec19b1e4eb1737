package model

import (
	"socihub/shared/model"
)

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldCapacity        = "capacity"
	FieldPricePerDay     = "price_per_day"
	FieldPricePerHalfDay = "price_per_half_day"
	FieldPricePerHour    = "price_per_hour"
	FieldStatus          = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Amenity is a shared facility members can reserve. Prices are stored in the
// smallest currency unit.
type Amenity struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	Capacity        int    `db:"capacity"`
	PricePerDay     int64  `db:"price_per_day"`
	PricePerHalfDay int64  `db:"price_per_half_day"`
	PricePerHour    int64  `db:"price_per_hour"`
	Status          string `db:"status"`
	model.Metadata
}

func (a *Amenity) Active() bool {
	return a.Status == StatusActive
}
