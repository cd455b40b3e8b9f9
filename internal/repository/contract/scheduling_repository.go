package contract

import (
	"context"
	"time"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SchedulingRepository interface {
	Create(ctx context.Context, scheduling *entity.Scheduling) error
	Update(ctx context.Context, scheduling *entity.Scheduling) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindOne preloads the client and each attending pet.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scheduling, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scheduling, error)

	// Pet attendance rows
	AddPets(ctx context.Context, pets []*entity.SchedulingPet) error
	UpdatePet(ctx context.Context, pet *entity.SchedulingPet) error
	DeletePetsByIds(ctx context.Context, ids []uuid.UUID) error
	FindPets(ctx context.Context, schedulingId uuid.UUID) ([]*entity.SchedulingPet, error)
	// FindFuturePets returns attendance rows for the given pets joined with
	// their parent scheduling (status scheduled, pickup at or after from) and
	// the price tier recorded at creation time.
	FindFuturePets(ctx context.Context, clientId uuid.UUID, petIds []uuid.UUID, from time.Time) ([]*entity.SchedulingPet, error)

	Stats(ctx context.Context, userId uuid.UUID, from, to *time.Time) (*entity.SchedulingStats, error)
}

type SystemLogRepository interface {
	Create(ctx context.Context, log *entity.SystemLog) error
}
