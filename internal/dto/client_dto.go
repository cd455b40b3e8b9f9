package dto

import (
	"time"

	"github.com/google/uuid"
)

type PetPayload struct {
	// Id present on update payloads; zero on creation.
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name" validate:"required,min=1"`
	Breed  *string   `json:"breed"`
	Size   *string   `json:"size" validate:"omitempty,oneof=small medium large"`
	Weight *float64  `json:"weight" validate:"omitempty,gt=0"`
	Notes  *string   `json:"notes"`
}

// SubscriptionPayload is the nested plan attached to a pet in the client
// create/update forms.
type SubscriptionPayload struct {
	PackagePriceId       uuid.UUID `json:"package_price_id" validate:"required"`
	PickupDayOfWeek      int       `json:"pickup_day_of_week" validate:"min=0,max=6"`
	PickupTime           *string   `json:"pickup_time" validate:"omitempty,len=5"`
	StartDate            time.Time `json:"start_date" validate:"required"`
	AdjustmentPercentage float64   `json:"adjustment_percentage" validate:"min=-100,max=100"`
	AdjustmentReason     string    `json:"adjustment_reason" validate:"omitempty,oneof=desconto_multiplos_pets desconto_fidelidade taxa_deslocamento taxa_urgencia desconto_promocional acrescimo_dificuldade outros"`
	Notes                *string   `json:"notes"`
}

type ClientPetPayload struct {
	PetPayload
	Subscription *SubscriptionPayload `json:"subscription"`
}

type CreateClientRequest struct {
	Name    string             `json:"name" validate:"required,min=1"`
	Email   *string            `json:"email" validate:"omitempty,email"`
	Phone   *string            `json:"phone"`
	Address *string            `json:"address"`
	Avatar  *string            `json:"avatar"`
	Notes   *string            `json:"notes"`
	Pets    []ClientPetPayload `json:"pets" validate:"dive"`
}

// UpdateClientRequest is the full PUT payload. Pets missing from the list are
// removed together with their subscriptions and future attendance rows;
// changed subscription configs trigger a reconciliation pass.
type UpdateClientRequest struct {
	Id      uuid.UUID
	Name    string             `json:"name" validate:"required,min=1"`
	Email   *string            `json:"email" validate:"omitempty,email"`
	Phone   *string            `json:"phone"`
	Address *string            `json:"address"`
	Avatar  *string            `json:"avatar"`
	Notes   *string            `json:"notes"`
	Pets    []ClientPetPayload `json:"pets" validate:"dive"`
}

type PatchClientRequest struct {
	Id      uuid.UUID
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Avatar  *string `json:"avatar"`
	Notes   *string `json:"notes"`
}

type PetResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Breed     *string   `json:"breed"`
	Size      *string   `json:"size"`
	Weight    *float64  `json:"weight"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type ClientResponse struct {
	Id            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Email         *string                `json:"email"`
	Phone         *string                `json:"phone"`
	Address       *string                `json:"address"`
	Avatar        *string                `json:"avatar"`
	Notes         *string                `json:"notes"`
	IsActive      bool                   `json:"is_active"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	Pets          []PetResponse          `json:"pets,omitempty"`
	Subscriptions []SubscriptionResponse `json:"subscriptions,omitempty"`
}

type ClientListItemResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    *string   `json:"phone"`
	IsActive bool      `json:"is_active"`
	PetCount int       `json:"pet_count"`
}

type CreateClientResponse struct {
	Id uuid.UUID `json:"id"`
}
