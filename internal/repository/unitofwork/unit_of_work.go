package unitofwork

import (
	"context"

	"petgroom-be/internal/repository/contract"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	// LockClient serializes concurrent writers touching the same client's
	// subscriptions and schedulings. Must be called inside a transaction;
	// the lock is released on commit or rollback.
	LockClient(ctx context.Context, clientId uuid.UUID) error

	UserRepository() contract.UserRepository
	ClientRepository() contract.ClientRepository
	PetRepository() contract.PetRepository
	PackageRepository() contract.PackageRepository
	SubscriptionRepository() contract.SubscriptionRepository
	SchedulingRepository() contract.SchedulingRepository
	SystemLogRepository() contract.SystemLogRepository
}
