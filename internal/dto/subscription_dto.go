package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSubscriptionRequest struct {
	ClientId             uuid.UUID `json:"client_id" validate:"required"`
	PetId                uuid.UUID `json:"pet_id" validate:"required"`
	PackagePriceId       uuid.UUID `json:"package_price_id" validate:"required"`
	PickupDayOfWeek      int       `json:"pickup_day_of_week" validate:"min=0,max=6"`
	PickupTime           *string   `json:"pickup_time" validate:"omitempty,len=5"`
	StartDate            time.Time `json:"start_date" validate:"required"`
	AdjustmentPercentage float64   `json:"adjustment_percentage" validate:"min=-100,max=100"`
	AdjustmentReason     string    `json:"adjustment_reason" validate:"omitempty,oneof=desconto_multiplos_pets desconto_fidelidade taxa_deslocamento taxa_urgencia desconto_promocional acrescimo_dificuldade outros"`
	Notes                *string   `json:"notes"`
}

type UpdateSubscriptionRequest struct {
	Id                   uuid.UUID
	PackagePriceId       *uuid.UUID `json:"package_price_id"`
	PickupDayOfWeek      *int       `json:"pickup_day_of_week" validate:"omitempty,min=0,max=6"`
	PickupTime           *string    `json:"pickup_time" validate:"omitempty,len=5"`
	StartDate            *time.Time `json:"start_date"`
	AdjustmentPercentage *float64   `json:"adjustment_percentage" validate:"omitempty,min=-100,max=100"`
	AdjustmentReason     *string    `json:"adjustment_reason" validate:"omitempty,oneof=desconto_multiplos_pets desconto_fidelidade taxa_deslocamento taxa_urgencia desconto_promocional acrescimo_dificuldade outros"`
	Notes                *string    `json:"notes"`
}

type SubscriptionResponse struct {
	Id                   uuid.UUID  `json:"id"`
	ClientId             uuid.UUID  `json:"client_id"`
	PetId                uuid.UUID  `json:"pet_id"`
	PackagePriceId       uuid.UUID  `json:"package_price_id"`
	PackageName          string     `json:"package_name,omitempty"`
	Recurrence           int        `json:"recurrence"`
	PickupDayOfWeek      int        `json:"pickup_day_of_week"`
	PickupTime           *string    `json:"pickup_time"`
	StartDate            time.Time  `json:"start_date"`
	NextPickupDate       *time.Time `json:"next_pickup_date"`
	EndDate              *time.Time `json:"end_date"`
	BasePrice            float64    `json:"base_price"`
	FinalPrice           float64    `json:"final_price"`
	AdjustmentValue      float64    `json:"adjustment_value"`
	AdjustmentPercentage float64    `json:"adjustment_percentage"`
	AdjustmentReason     string     `json:"adjustment_reason,omitempty"`
	IsActive             bool       `json:"is_active"`
	Notes                *string    `json:"notes"`
	CreatedAt            time.Time  `json:"created_at"`
}

type CreateSubscriptionResponse struct {
	Id uuid.UUID `json:"id"`
}

type CalculatePriceRequest struct {
	ClientId             uuid.UUID `json:"client_id" validate:"required"`
	PackagePriceId       uuid.UUID `json:"package_price_id" validate:"required"`
	AdjustmentPercentage *float64  `json:"adjustment_percentage" validate:"omitempty,min=-100,max=100"`
	AdjustmentReason     *string   `json:"adjustment_reason" validate:"omitempty,oneof=desconto_multiplos_pets desconto_fidelidade taxa_deslocamento taxa_urgencia desconto_promocional acrescimo_dificuldade outros"`
}

// PriceCalculations is the breakdown block of the price preview so forms can
// display each component separately.
type PriceCalculations struct {
	BasePrice           float64 `json:"base_price"`
	MultiPetDiscount    float64 `json:"multi_pet_discount"`
	CustomAdjustment    float64 `json:"custom_adjustment"`
	AppliedPercentage   float64 `json:"applied_percentage"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
}

type CalculatePriceResponse struct {
	BasePrice            float64           `json:"base_price"`
	FinalPrice           float64           `json:"final_price"`
	AdjustmentValue      float64           `json:"adjustment_value"`
	AdjustmentPercentage float64           `json:"adjustment_percentage"`
	AdjustmentReason     string            `json:"adjustment_reason"`
	Calculations         PriceCalculations `json:"calculations"`
}
