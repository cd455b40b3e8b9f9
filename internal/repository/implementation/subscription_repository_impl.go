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

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.ClientSubscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.ClientSubscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClientSubscription, error) {
	var m model.ClientSubscription
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("PackagePrice").Preload("PackagePrice.Package"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientSubscription, error) {
	var models []*model.ClientSubscription
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("PackagePrice").Preload("PackagePrice.Package"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ClientSubscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) CountActiveByClient(ctx context.Context, clientId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ClientSubscription{}).
		Where("client_id = ?", clientId).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CountActiveByPrice(ctx context.Context, packagePriceId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ClientSubscription{}).
		Where("package_price_id = ?", packagePriceId).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CountActiveByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ClientSubscription{}).
		Joins("JOIN clients ON clients.id = client_subscriptions.client_id").
		Where("clients.user_id = ?", userId).
		Where("client_subscriptions.is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) DeleteByPetIds(ctx context.Context, petIds []uuid.UUID) error {
	if len(petIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("pet_id IN ?", petIds).Delete(&model.ClientSubscription{}).Error
}
