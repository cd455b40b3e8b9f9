package model

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     *string   `gorm:"type:varchar(255)"`
	Phone     *string   `gorm:"type:varchar(50)"`
	Address   *string   `gorm:"type:text"`
	Avatar    *string   `gorm:"type:text"`
	Notes     *string   `gorm:"type:text"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	// Relations
	User          *User                 `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Pets          []*Pet                `gorm:"foreignKey:ClientId"`
	Subscriptions []*ClientSubscription `gorm:"foreignKey:ClientId"`
}

func (Client) TableName() string {
	return "clients"
}
