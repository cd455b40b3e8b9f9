package model

import (
	"time"

	"github.com/google/uuid"
)

type Pet struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Breed     *string   `gorm:"type:varchar(255)"`
	Size      *string   `gorm:"type:pet_size"`
	Weight    *float64  `gorm:"type:decimal(6,2)"`
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	// Relations
	Client *Client `gorm:"foreignKey:ClientId;constraint:OnDelete:CASCADE"`
}

func (Pet) TableName() string {
	return "pets"
}
