package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByGoogleId struct {
	GoogleId string
}

func (s ByGoogleId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("google_id = ?", s.GoogleId)
}

// UserOwnedBy scopes rows to the authenticated account owner.
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ClientOwnedBy scopes rows to one client.
type ClientOwnedBy struct {
	ClientID uuid.UUID
}

func (s ClientOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("client_id = ?", s.ClientID)
}

type ByPetID struct {
	PetID uuid.UUID
}

func (s ByPetID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pet_id = ?", s.PetID)
}

type ByPetIDs struct {
	PetIDs []uuid.UUID
}

func (s ByPetIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pet_id IN ?", s.PetIDs)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
