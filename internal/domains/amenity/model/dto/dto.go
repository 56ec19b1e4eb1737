package dto

import (
	"github.com/google/uuid"

	"socihub/internal/domains/amenity/model"
	"socihub/shared"
	gDto "socihub/shared/dto"
	gModel "socihub/shared/model"
	"socihub/shared/timezone"
)

type CreateAmenityRequest struct {
	Name            string `json:"name"               validate:"required,max=100"`
	Description     string `json:"description"        validate:"omitempty,max=500"`
	Capacity        int    `json:"capacity"           validate:"required,min=1"`
	PricePerDay     int64  `json:"price_per_day"      validate:"min=0"`
	PricePerHalfDay int64  `json:"price_per_half_day" validate:"min=0"`
	PricePerHour    int64  `json:"price_per_hour"     validate:"min=0"`
	Status          string `json:"status"             validate:"omitempty,oneof=active inactive"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	status := model.StatusActive
	if c.Status != "" {
		status = c.Status
	}

	return model.Amenity{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		Capacity:        c.Capacity,
		PricePerDay:     c.PricePerDay,
		PricePerHalfDay: c.PricePerHalfDay,
		PricePerHour:    c.PricePerHour,
		Status:          status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Name            string `db:"name"               json:"name"               validate:"omitempty,max=100"`
	Description     string `db:"description"        json:"description"        validate:"omitempty,max=500"`
	Capacity        int    `db:"capacity"           json:"capacity"           validate:"omitempty,min=1"`
	PricePerDay     int64  `db:"price_per_day"      json:"price_per_day"      validate:"omitempty,min=0"`
	PricePerHalfDay int64  `db:"price_per_half_day" json:"price_per_half_day" validate:"omitempty,min=0"`
	PricePerHour    int64  `db:"price_per_hour"     json:"price_per_hour"     validate:"omitempty,min=0"`
	Status          string `db:"status"             json:"status"             validate:"omitempty,oneof=active inactive"`
}

type AmenityResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Capacity        int    `json:"capacity"`
	PricePerDay     int64  `json:"price_per_day"`
	PricePerHalfDay int64  `json:"price_per_half_day"`
	PricePerHour    int64  `json:"price_per_hour"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.PricePerDay = model.PricePerDay
	r.PricePerHalfDay = model.PricePerHalfDay
	r.PricePerHour = model.PricePerHour
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}
