package contract

import (
	"context"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.ClientSubscription) error
	Update(ctx context.Context, subscription *entity.ClientSubscription) error
	// FindOne/FindAll preload the backing price tier.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClientSubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientSubscription, error)
	CountActiveByClient(ctx context.Context, clientId uuid.UUID) (int64, error)
	CountActiveByPrice(ctx context.Context, packagePriceId uuid.UUID) (int64, error)
	CountActiveByUser(ctx context.Context, userId uuid.UUID) (int64, error)
	// DeleteByPetIds hard-deletes, used only when the owning pets are removed.
	DeleteByPetIds(ctx context.Context, petIds []uuid.UUID) error
}
