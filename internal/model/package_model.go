package model

import (
	"time"

	"github.com/google/uuid"
)

type Package struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	// Relations
	User   *User           `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Prices []*PackagePrice `gorm:"foreignKey:PackageId"`
}

func (Package) TableName() string {
	return "packages"
}

type PackagePrice struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PackageId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Recurrence int       `gorm:"not null"` // days between pickups
	Price      float64   `gorm:"type:decimal(10,2);not null"`
	IsActive   bool      `gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	// Relations
	Package *Package `gorm:"foreignKey:PackageId;constraint:OnDelete:CASCADE"`
}

func (PackagePrice) TableName() string {
	return "package_prices"
}
