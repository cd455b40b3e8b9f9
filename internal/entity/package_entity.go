package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecurrenceOptions is the catalog of offered intervals in days between
// pickups. The >7 tiers are week-granular so pickup dates stay anchored to a
// fixed weekday.
var RecurrenceOptions = []int{7, 15, 30, 60}

type Package struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Prices []*PackagePrice
}

// PackagePrice is one price tier of a Package, keyed by recurrence interval.
// A subscription copies Price at creation time; later corrections never
// retroactively change existing subscriptions.
type PackagePrice struct {
	Id         uuid.UUID
	PackageId  uuid.UUID
	Recurrence int // days between pickups
	Price      float64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relations
	Package *Package
}
