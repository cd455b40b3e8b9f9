package entity

import (
	"time"

	"github.com/google/uuid"
)

type SchedulingStatus string

const (
	SchedulingStatusScheduled  SchedulingStatus = "scheduled"
	SchedulingStatusConfirmed  SchedulingStatus = "confirmed"
	SchedulingStatusInProgress SchedulingStatus = "in_progress"
	SchedulingStatusCompleted  SchedulingStatus = "completed"
	SchedulingStatusCancelled  SchedulingStatus = "cancelled"
)

// statusRank orders the forward-only lifecycle. Cancellation sits outside the
// ranking as the terminal escape from any non-terminal state.
var statusRank = map[SchedulingStatus]int{
	SchedulingStatusScheduled:  0,
	SchedulingStatusConfirmed:  1,
	SchedulingStatusInProgress: 2,
	SchedulingStatusCompleted:  3,
}

func (s SchedulingStatus) Valid() bool {
	if s == SchedulingStatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

func (s SchedulingStatus) Terminal() bool {
	return s == SchedulingStatusCompleted || s == SchedulingStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to next:
// forward along scheduled → confirmed → in_progress → completed, or to
// cancelled from any non-terminal state.
func (s SchedulingStatus) CanTransitionTo(next SchedulingStatus) bool {
	if !s.Valid() || !next.Valid() || next == s {
		return false
	}
	if next == SchedulingStatusCancelled {
		return !s.Terminal()
	}
	if s == SchedulingStatusCancelled {
		return false
	}
	return statusRank[next] > statusRank[s]
}

// Scheduling is one concrete appointment for a client, carrying the
// aggregate price across every pet attending.
type Scheduling struct {
	Id                   uuid.UUID
	ClientId             uuid.UUID
	PickupDate           time.Time
	PickupTime           *string
	Status               SchedulingStatus
	BasePrice            float64
	FinalPrice           float64
	AdjustmentValue      float64
	AdjustmentPercentage float64
	AdjustmentReason     string
	Notes                *string
	StartedAt            *time.Time
	CompletedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Relations
	Client *Client
	Pets   []*SchedulingPet
}

// SchedulingPet links one pet to one scheduling, recording which price tier
// applied for that pet on that appointment.
type SchedulingPet struct {
	Id             uuid.UUID
	SchedulingId   uuid.UUID
	PetId          uuid.UUID
	PackagePriceId *uuid.UUID
	CreatedAt      time.Time

	// Relations
	Scheduling   *Scheduling
	Pet          *Pet
	PackagePrice *PackagePrice
}
