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

type ClientRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClientMapper
}

func NewClientRepository(db *gorm.DB) contract.ClientRepository {
	return &ClientRepositoryImpl{
		db:     db,
		mapper: mapper.NewClientMapper(),
	}
}

func (r *ClientRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, client *entity.Client) error {
	m := r.mapper.ToModel(client)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*client = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, client *entity.Client) error {
	m := r.mapper.ToModel(client)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*client = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClientRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}

func (r *ClientRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error) {
	var m model.Client
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("Pets").Preload("Subscriptions").Preload("Subscriptions.PackagePrice")
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ClientRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error) {
	var models []*model.Client
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("Pets").Preload("Subscriptions").Preload("Subscriptions.PackagePrice")
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Client, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
