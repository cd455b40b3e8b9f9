package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSchedulingRequest struct {
	ClientId             uuid.UUID   `json:"client_id" validate:"required"`
	PetIds               []uuid.UUID `json:"pet_ids" validate:"required,min=1"`
	PickupDate           time.Time   `json:"pickup_date" validate:"required"`
	PickupTime           *string     `json:"pickup_time" validate:"omitempty,len=5"`
	BasePrice            float64     `json:"base_price" validate:"min=0"`
	AdjustmentPercentage float64     `json:"adjustment_percentage" validate:"min=-100,max=100"`
	AdjustmentReason     string      `json:"adjustment_reason" validate:"omitempty,oneof=desconto_multiplos_pets desconto_fidelidade taxa_deslocamento taxa_urgencia desconto_promocional acrescimo_dificuldade outros"`
	Notes                *string     `json:"notes"`
}

type UpdateSchedulingStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=scheduled confirmed in_progress completed cancelled"`
}

type PatchSchedulingRequest struct {
	Id                   uuid.UUID
	PickupDate           *time.Time `json:"pickup_date"`
	PickupTime           *string    `json:"pickup_time" validate:"omitempty,len=5"`
	AdjustmentPercentage *float64   `json:"adjustment_percentage" validate:"omitempty,min=-100,max=100"`
	AdjustmentReason     *string    `json:"adjustment_reason" validate:"omitempty,oneof=desconto_multiplos_pets desconto_fidelidade taxa_deslocamento taxa_urgencia desconto_promocional acrescimo_dificuldade outros"`
	Notes                *string    `json:"notes"`
}

type SchedulingPetResponse struct {
	Id             uuid.UUID  `json:"id"`
	PetId          uuid.UUID  `json:"pet_id"`
	PetName        string     `json:"pet_name,omitempty"`
	PackagePriceId *uuid.UUID `json:"package_price_id"`
}

type SchedulingResponse struct {
	Id                   uuid.UUID               `json:"id"`
	ClientId             uuid.UUID               `json:"client_id"`
	ClientName           string                  `json:"client_name,omitempty"`
	PickupDate           time.Time               `json:"pickup_date"`
	PickupTime           *string                 `json:"pickup_time"`
	Status               string                  `json:"status"`
	BasePrice            float64                 `json:"base_price"`
	FinalPrice           float64                 `json:"final_price"`
	AdjustmentValue      float64                 `json:"adjustment_value"`
	AdjustmentPercentage float64                 `json:"adjustment_percentage"`
	AdjustmentReason     string                  `json:"adjustment_reason,omitempty"`
	Notes                *string                 `json:"notes"`
	StartedAt            *time.Time              `json:"started_at"`
	CompletedAt          *time.Time              `json:"completed_at"`
	CreatedAt            time.Time               `json:"created_at"`
	Pets                 []SchedulingPetResponse `json:"pets"`
}

type CreateSchedulingResponse struct {
	Id uuid.UUID `json:"id"`
}

type SchedulingStatsResponse struct {
	Total               int64   `json:"total"`
	Scheduled           int64   `json:"scheduled"`
	Completed           int64   `json:"completed"`
	CompletedRevenue    float64 `json:"completed_revenue"`
	EstimatedRevenue    float64 `json:"estimated_revenue"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
}
