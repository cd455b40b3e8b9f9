package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientSubscription is a recurring grooming plan for one pet. At most one
// active subscription exists per (client, pet) pair; deactivation keeps the
// row for history instead of deleting it.
type ClientSubscription struct {
	Id                   uuid.UUID
	ClientId             uuid.UUID
	PetId                uuid.UUID
	PackagePriceId       uuid.UUID
	PickupDayOfWeek      int     // 0=Sunday .. 6=Saturday
	PickupTime           *string // "HH:MM"
	StartDate            time.Time
	NextPickupDate       *time.Time
	EndDate              *time.Time
	BasePrice            float64 // copied from PackagePrice at creation
	FinalPrice           float64
	AdjustmentValue      float64
	AdjustmentPercentage float64 // [-100, 100]
	AdjustmentReason     string  // pricing.Reason* value, empty when none
	IsActive             bool
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Relations
	PackagePrice *PackagePrice
	Pet          *Pet
}

// Recurrence returns the interval in days of the price tier backing this
// subscription, defaulting to weekly when the relation is not loaded.
func (s *ClientSubscription) Recurrence() int {
	if s.PackagePrice != nil && s.PackagePrice.Recurrence > 0 {
		return s.PackagePrice.Recurrence
	}
	return 7
}
