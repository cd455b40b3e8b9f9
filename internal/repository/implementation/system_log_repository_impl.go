package implementation

import (
	"context"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/model"
	"petgroom-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, log *entity.SystemLog) error {
	m := &model.SystemLog{
		Id:        log.Id,
		Level:     log.Level,
		Module:    log.Module,
		Message:   log.Message,
		Details:   log.Details,
		CreatedAt: log.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.Id = m.Id
	log.CreatedAt = m.CreatedAt
	return nil
}
