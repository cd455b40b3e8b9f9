package contract

import (
	"context"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindOne/FindAll preload the package's price tiers.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Package, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Package, error)

	// Price tiers
	CreatePrice(ctx context.Context, price *entity.PackagePrice) error
	UpdatePrice(ctx context.Context, price *entity.PackagePrice) error
	DeletePrice(ctx context.Context, id uuid.UUID) error
	FindOnePrice(ctx context.Context, specs ...specification.Specification) (*entity.PackagePrice, error)
	FindAllPrices(ctx context.Context, specs ...specification.Specification) ([]*entity.PackagePrice, error)
}
