package implementation

import (
	"context"
	"errors"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/mapper"
	"petgroom-be/internal/model"
	"petgroom-be/internal/repository/contract"
	"petgroom-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PackageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PackageMapper
}

func NewPackageRepository(db *gorm.DB) contract.PackageRepository {
	return &PackageRepositoryImpl{
		db:     db,
		mapper: mapper.NewPackageMapper(),
	}
}

func (r *PackageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PackageRepositoryImpl) Create(ctx context.Context, pkg *entity.Package) error {
	m := r.mapper.ToModel(pkg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pkg = *r.mapper.ToEntity(m)
	return nil
}

func (r *PackageRepositoryImpl) Update(ctx context.Context, pkg *entity.Package) error {
	m := r.mapper.ToModel(pkg)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pkg = *r.mapper.ToEntity(m)
	return nil
}

func (r *PackageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Package{}).Error
}

func (r *PackageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Package, error) {
	var m model.Package
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Prices"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PackageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Package, error) {
	var models []*model.Package
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Prices"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Package, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PackageRepositoryImpl) CreatePrice(ctx context.Context, price *entity.PackagePrice) error {
	m := r.mapper.PriceToModel(price)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*price = *r.mapper.PriceToEntity(m)
	return nil
}

func (r *PackageRepositoryImpl) UpdatePrice(ctx context.Context, price *entity.PackagePrice) error {
	m := r.mapper.PriceToModel(price)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*price = *r.mapper.PriceToEntity(m)
	return nil
}

func (r *PackageRepositoryImpl) DeletePrice(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PackagePrice{}).Error
}

func (r *PackageRepositoryImpl) FindOnePrice(ctx context.Context, specs ...specification.Specification) (*entity.PackagePrice, error) {
	var m model.PackagePrice
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Package"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PriceToEntity(&m), nil
}

func (r *PackageRepositoryImpl) FindAllPrices(ctx context.Context, specs ...specification.Specification) ([]*entity.PackagePrice, error) {
	var models []*model.PackagePrice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PackagePrice, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PriceToEntity(m)
	}
	return entities, nil
}
