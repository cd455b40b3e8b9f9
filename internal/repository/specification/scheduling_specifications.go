package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientIn scopes rows to a set of clients, used to restrict scheduling
// listings to the clients of one account.
type ClientIn struct {
	ClientIDs []uuid.UUID
}

func (s ClientIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("client_id IN ?", s.ClientIDs)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// PickupFrom keeps schedulings whose pickup date is at or after From.
type PickupFrom struct {
	From time.Time
}

func (s PickupFrom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pickup_date >= ?", s.From)
}

type PickupBetween struct {
	From time.Time
	To   time.Time
}

func (s PickupBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pickup_date BETWEEN ? AND ?", s.From, s.To)
}
