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

type PetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClientMapper
}

func NewPetRepository(db *gorm.DB) contract.PetRepository {
	return &PetRepositoryImpl{
		db:     db,
		mapper: mapper.NewClientMapper(),
	}
}

func (r *PetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PetRepositoryImpl) Create(ctx context.Context, pet *entity.Pet) error {
	m := r.mapper.PetToModel(pet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pet = *r.mapper.PetToEntity(m)
	return nil
}

func (r *PetRepositoryImpl) CreateAll(ctx context.Context, pets []*entity.Pet) error {
	if len(pets) == 0 {
		return nil
	}
	models := make([]*model.Pet, len(pets))
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

func (r *PetRepositoryImpl) Update(ctx context.Context, pet *entity.Pet) error {
	m := r.mapper.PetToModel(pet)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pet = *r.mapper.PetToEntity(m)
	return nil
}

func (r *PetRepositoryImpl) DeleteByIds(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Pet{}).Error
}

func (r *PetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pet, error) {
	var m model.Pet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PetToEntity(&m), nil
}

func (r *PetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pet, error) {
	var models []*model.Pet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Pet, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PetToEntity(m)
	}
	return entities, nil
}
