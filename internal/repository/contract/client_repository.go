package contract

import (
	"context"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindOne preloads the client's pets and subscriptions.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error)
}

type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	CreateAll(ctx context.Context, pets []*entity.Pet) error
	Update(ctx context.Context, pet *entity.Pet) error
	DeleteByIds(ctx context.Context, ids []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pet, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pet, error)
}
