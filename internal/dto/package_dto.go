package dto

import (
	"time"

	"github.com/google/uuid"
)

type PackagePricePayload struct {
	Recurrence int     `json:"recurrence" validate:"required,oneof=7 15 30 60"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}

type CreatePackageRequest struct {
	Name        string                `json:"name" validate:"required,min=1"`
	Description *string               `json:"description"`
	Prices      []PackagePricePayload `json:"prices" validate:"required,min=1,dive"`
}

type UpdatePackageRequest struct {
	Id          uuid.UUID
	Name        string  `json:"name" validate:"required,min=1"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreatePackagePriceRequest struct {
	PackageId  uuid.UUID
	Recurrence int     `json:"recurrence" validate:"required,oneof=7 15 30 60"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}

type UpdatePackagePriceRequest struct {
	PackageId  uuid.UUID
	PriceId    uuid.UUID
	Price      float64 `json:"price" validate:"required,gt=0"`
	IsActive   *bool   `json:"is_active"`
	Recurrence *int    `json:"recurrence" validate:"omitempty,oneof=7 15 30 60"`
}

type PackagePriceResponse struct {
	Id         uuid.UUID `json:"id"`
	Recurrence int       `json:"recurrence"`
	Price      float64   `json:"price"`
	IsActive   bool      `json:"is_active"`
}

type PackageResponse struct {
	Id          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	IsActive    bool                   `json:"is_active"`
	CreatedAt   time.Time              `json:"created_at"`
	Prices      []PackagePriceResponse `json:"prices"`
}

type CreatePackageResponse struct {
	Id uuid.UUID `json:"id"`
}

// CatalogPriceResponse is the flattened tier list the booking forms consume.
type CatalogPriceResponse struct {
	Id          uuid.UUID `json:"id"`
	PackageId   uuid.UUID `json:"package_id"`
	PackageName string    `json:"package_name"`
	Recurrence  int       `json:"recurrence"`
	Price       float64   `json:"price"`
}
