package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash *string // nil for OAuth-only accounts
	GoogleId     *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
