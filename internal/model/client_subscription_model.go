package model

import (
	"time"

	"github.com/google/uuid"
)

type ClientSubscription struct {
	Id                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId             uuid.UUID  `gorm:"type:uuid;not null;index"`
	PetId                uuid.UUID  `gorm:"type:uuid;not null;index"`
	PackagePriceId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	PickupDayOfWeek      int        `gorm:"not null"` // 0=Sunday .. 6=Saturday
	PickupTime           *string    `gorm:"type:varchar(5)"`
	StartDate            time.Time  `gorm:"not null"`
	NextPickupDate       *time.Time `gorm:"index"`
	EndDate              *time.Time
	BasePrice            float64   `gorm:"type:decimal(10,2);not null"`
	FinalPrice           float64   `gorm:"type:decimal(10,2);not null"`
	AdjustmentValue      float64   `gorm:"type:decimal(10,2);default:0"`
	AdjustmentPercentage float64   `gorm:"type:decimal(5,2);default:0"`
	AdjustmentReason     *string   `gorm:"type:varchar(50)"`
	IsActive             bool      `gorm:"default:true;index"`
	Notes                *string   `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`

	// Relations
	Client       *Client       `gorm:"foreignKey:ClientId;constraint:OnDelete:CASCADE"`
	Pet          *Pet          `gorm:"foreignKey:PetId;constraint:OnDelete:CASCADE"`
	PackagePrice *PackagePrice `gorm:"foreignKey:PackagePriceId"`
}

func (ClientSubscription) TableName() string {
	return "client_subscriptions"
}
