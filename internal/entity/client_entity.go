package entity

import (
	"time"

	"github.com/google/uuid"
)

type PetSize string

const (
	PetSizeSmall  PetSize = "small"
	PetSizeMedium PetSize = "medium"
	PetSizeLarge  PetSize = "large"
)

type Client struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	Avatar    *string
	Notes     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Pets          []*Pet
	Subscriptions []*ClientSubscription
}

type Pet struct {
	Id        uuid.UUID
	ClientId  uuid.UUID
	Name      string
	Breed     *string
	Size      *PetSize
	Weight    *float64
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
