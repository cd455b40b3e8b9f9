package implementation

import (
	"context"
	"errors"
	"time"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/mapper"
	"petgroom-be/internal/model"
	"petgroom-be/internal/repository/contract"
	"petgroom-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchedulingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchedulingMapper
}

func NewSchedulingRepository(db *gorm.DB) contract.SchedulingRepository {
	return &SchedulingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchedulingMapper(),
	}
}

func (r *SchedulingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SchedulingRepositoryImpl) Create(ctx context.Context, scheduling *entity.Scheduling) error {
	m := r.mapper.ToModel(scheduling)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scheduling = *r.mapper.ToEntity(m)
	return nil
}

func (r *SchedulingRepositoryImpl) Update(ctx context.Context, scheduling *entity.Scheduling) error {
	m := r.mapper.ToModel(scheduling)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*scheduling = *r.mapper.ToEntity(m)
	return nil
}

func (r *SchedulingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Scheduling{}).Error
}

func (r *SchedulingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scheduling, error) {
	var m model.Scheduling
	query := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pets").
		Preload("Pets.Pet").
		Preload("Pets.PackagePrice")
	query = r.applySpecifications(query, specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SchedulingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scheduling, error) {
	var models []*model.Scheduling
	query := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pets").
		Preload("Pets.Pet")
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Scheduling, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SchedulingRepositoryImpl) AddPets(ctx context.Context, pets []*entity.SchedulingPet) error {
	if len(pets) == 0 {
		return nil
	}
	models := make([]*model.SchedulingPet, len(pets))
	for i, p := range pets {
		models[i] = r.mapper.PetToModel(p)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*pets[i] = *r.mapper.PetToEntity(m)
	}
	return nil
}

func (r *SchedulingRepositoryImpl) UpdatePet(ctx context.Context, pet *entity.SchedulingPet) error {
	m := r.mapper.PetToModel(pet)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pet = *r.mapper.PetToEntity(m)
	return nil
}

func (r *SchedulingRepositoryImpl) DeletePetsByIds(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.SchedulingPet{}).Error
}

func (r *SchedulingRepositoryImpl) FindPets(ctx context.Context, schedulingId uuid.UUID) ([]*entity.SchedulingPet, error) {
	var models []*model.SchedulingPet
	err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("PackagePrice").
		Where("scheduling_id = ?", schedulingId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.SchedulingPet, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PetToEntity(m)
	}
	return entities, nil
}

func (r *SchedulingRepositoryImpl) FindFuturePets(ctx context.Context, clientId uuid.UUID, petIds []uuid.UUID, from time.Time) ([]*entity.SchedulingPet, error) {
	if len(petIds) == 0 {
		return nil, nil
	}
	var models []*model.SchedulingPet
	err := r.db.WithContext(ctx).
		Joins("JOIN schedulings ON schedulings.id = scheduling_pets.scheduling_id").
		Where("scheduling_pets.pet_id IN ?", petIds).
		Where("schedulings.client_id = ?", clientId).
		Where("schedulings.status = ?", string(entity.SchedulingStatusScheduled)).
		Where("schedulings.pickup_date >= ?", from).
		Preload("Scheduling").
		Preload("PackagePrice").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.SchedulingPet, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PetToEntity(m)
	}
	return entities, nil
}

func (r *SchedulingRepositoryImpl) Stats(ctx context.Context, userId uuid.UUID, from, to *time.Time) (*entity.SchedulingStats, error) {
	stats := &entity.SchedulingStats{}

	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).
			Model(&model.Scheduling{}).
			Joins("JOIN clients ON clients.id = schedulings.client_id").
			Where("clients.user_id = ?", userId)
		if from != nil {
			q = q.Where("schedulings.pickup_date >= ?", *from)
		}
		if to != nil {
			q = q.Where("schedulings.pickup_date <= ?", *to)
		}
		return q
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("schedulings.status = ?", string(entity.SchedulingStatusScheduled)).Count(&stats.Scheduled).Error; err != nil {
		return nil, err
	}
	if err := base().Where("schedulings.status = ?", string(entity.SchedulingStatusCompleted)).Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := base().
		Where("schedulings.status = ?", string(entity.SchedulingStatusCompleted)).
		Select("COALESCE(SUM(schedulings.final_price), 0)").
		Scan(&stats.CompletedRevenue).Error; err != nil {
		return nil, err
	}
	if err := base().
		Where("schedulings.status = ?", string(entity.SchedulingStatusScheduled)).
		Select("COALESCE(SUM(schedulings.final_price), 0)").
		Scan(&stats.EstimatedRevenue).Error; err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).
		Model(&model.ClientSubscription{}).
		Joins("JOIN clients ON clients.id = client_subscriptions.client_id").
		Where("clients.user_id = ?", userId).
		Where("client_subscriptions.is_active = ?", true).
		Count(&stats.ActiveSubscriptions).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
