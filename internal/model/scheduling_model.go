package model

import (
	"time"

	"github.com/google/uuid"
)

type Scheduling struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId             uuid.UUID `gorm:"type:uuid;not null;index"`
	PickupDate           time.Time `gorm:"not null;index"`
	PickupTime           *string   `gorm:"type:varchar(5)"`
	Status               string    `gorm:"type:scheduling_status;not null;default:'scheduled';index"`
	BasePrice            float64   `gorm:"type:decimal(10,2);not null"`
	FinalPrice           float64   `gorm:"type:decimal(10,2);not null"`
	AdjustmentValue      float64   `gorm:"type:decimal(10,2);default:0"`
	AdjustmentPercentage float64   `gorm:"type:decimal(5,2);default:0"`
	AdjustmentReason     *string   `gorm:"type:varchar(50)"`
	Notes                *string   `gorm:"type:text"`
	StartedAt            *time.Time
	CompletedAt          *time.Time
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`

	// Relations
	Client *Client          `gorm:"foreignKey:ClientId;constraint:OnDelete:CASCADE"`
	Pets   []*SchedulingPet `gorm:"foreignKey:SchedulingId"`
}

func (Scheduling) TableName() string {
	return "schedulings"
}

type SchedulingPet struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchedulingId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	PetId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	PackagePriceId *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`

	// Relations
	Scheduling   *Scheduling   `gorm:"foreignKey:SchedulingId;constraint:OnDelete:CASCADE"`
	Pet          *Pet          `gorm:"foreignKey:PetId;constraint:OnDelete:CASCADE"`
	PackagePrice *PackagePrice `gorm:"foreignKey:PackagePriceId"`
}

func (SchedulingPet) TableName() string {
	return "scheduling_pets"
}
