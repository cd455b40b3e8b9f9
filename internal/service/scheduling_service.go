package service

import (
	"context"
	"sort"
	"time"

	"petgroom-be/internal/apperror"
	"petgroom-be/internal/dto"
	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/specification"
	"petgroom-be/internal/repository/unitofwork"
	"petgroom-be/pkg/events"
	"petgroom-be/pkg/pricing"
	"petgroom-be/pkg/schedule"

	"github.com/google/uuid"
)

type SchedulingFilter struct {
	ClientId *uuid.UUID
	Status   *string
	From     *time.Time
	To       *time.Time
}

type ISchedulingService interface {
	GetAll(ctx context.Context, userId uuid.UUID, filter SchedulingFilter) ([]dto.SchedulingResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.SchedulingResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSchedulingRequest) (*dto.CreateSchedulingResponse, error)
	UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateSchedulingStatusRequest) (*dto.SchedulingResponse, error)
	Patch(ctx context.Context, userId uuid.UUID, req *dto.PatchSchedulingRequest) (*dto.SchedulingResponse, error)
	Stats(ctx context.Context, userId uuid.UUID, from, to *time.Time) (*dto.SchedulingStatsResponse, error)
}

type schedulingService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewSchedulingService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) ISchedulingService {
	return &schedulingService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func schedulingResponseOf(s *entity.Scheduling) dto.SchedulingResponse {
	res := dto.SchedulingResponse{
		Id:                   s.Id,
		ClientId:             s.ClientId,
		PickupDate:           s.PickupDate,
		PickupTime:           s.PickupTime,
		Status:               string(s.Status),
		BasePrice:            s.BasePrice,
		FinalPrice:           s.FinalPrice,
		AdjustmentValue:      s.AdjustmentValue,
		AdjustmentPercentage: s.AdjustmentPercentage,
		AdjustmentReason:     s.AdjustmentReason,
		Notes:                s.Notes,
		StartedAt:            s.StartedAt,
		CompletedAt:          s.CompletedAt,
		CreatedAt:            s.CreatedAt,
		Pets:                 make([]dto.SchedulingPetResponse, 0, len(s.Pets)),
	}
	if s.Client != nil {
		res.ClientName = s.Client.Name
	}
	for _, sp := range s.Pets {
		pet := dto.SchedulingPetResponse{
			Id:             sp.Id,
			PetId:          sp.PetId,
			PackagePriceId: sp.PackagePriceId,
		}
		if sp.Pet != nil {
			pet.PetName = sp.Pet.Name
		}
		res.Pets = append(res.Pets, pet)
	}
	return res
}

// groupKey identifies subscriptions that share a scheduling: same recurrence
// tier picked up on the same weekday.
type groupKey struct {
	recurrence int
	weekday    int
}

// materializeSchedulings eagerly creates the concrete appointments implied by
// fresh subscriptions, grouped so pets sharing a configuration ride the same
// scheduling. Runs inside the caller's transaction.
func materializeSchedulings(ctx context.Context, uow unitofwork.UnitOfWork, clientId uuid.UUID, subs []*entity.ClientSubscription, now time.Time) (int, error) {
	groups := make(map[groupKey][]*entity.ClientSubscription)
	for _, sub := range subs {
		if !sub.IsActive {
			continue
		}
		key := groupKey{recurrence: sub.Recurrence(), weekday: sub.PickupDayOfWeek}
		groups[key] = append(groups[key], sub)
	}

	horizon := schedule.DefaultHorizon(now)
	created := 0

	for key, group := range groups {
		first := firstPickupOf(group, now)

		for _, date := range schedule.Occurrences(first, key.recurrence, horizon) {
			scheduling := newAggregateScheduling(clientId, date, group)
			if err := uow.SchedulingRepository().Create(ctx, scheduling); err != nil {
				return created, apperror.NewInternal(err)
			}

			rows := make([]*entity.SchedulingPet, 0, len(group))
			for _, sub := range group {
				priceId := sub.PackagePriceId
				rows = append(rows, &entity.SchedulingPet{
					Id:             uuid.New(),
					SchedulingId:   scheduling.Id,
					PetId:          sub.PetId,
					PackagePriceId: &priceId,
					CreatedAt:      now,
				})
			}
			if err := uow.SchedulingRepository().AddPets(ctx, rows); err != nil {
				return created, apperror.NewInternal(err)
			}
			created++
		}
	}

	return created, nil
}

// firstPickupOf picks the earliest resolved pickup among the group, resolving
// any subscription missing one.
func firstPickupOf(group []*entity.ClientSubscription, now time.Time) time.Time {
	var first time.Time
	for _, sub := range group {
		next := sub.NextPickupDate
		if next == nil {
			resolved := schedule.NextPickupDate(sub.StartDate, sub.Recurrence(), time.Weekday(sub.PickupDayOfWeek), now)
			next = &resolved
		}
		if first.IsZero() || next.Before(first) {
			first = *next
		}
	}
	return first
}

// newAggregateScheduling sums the group's subscription prices into one
// appointment row.
func newAggregateScheduling(clientId uuid.UUID, date time.Time, group []*entity.ClientSubscription) *entity.Scheduling {
	var baseTotal, finalTotal, valueTotal float64
	var pickupTime *string
	reason := ""
	for _, sub := range group {
		baseTotal += sub.BasePrice
		finalTotal += sub.FinalPrice
		valueTotal += sub.AdjustmentValue
		if pickupTime == nil {
			pickupTime = sub.PickupTime
		}
		if reason == "" && sub.AdjustmentReason != "" {
			reason = sub.AdjustmentReason
		}
		if sub.AdjustmentReason == pricing.ReasonMultiPetDiscount {
			reason = pricing.ReasonMultiPetDiscount
		}
	}

	pct := 0.0
	if baseTotal != 0 {
		pct = valueTotal / baseTotal * 100
	}

	return &entity.Scheduling{
		Id:                   uuid.New(),
		ClientId:             clientId,
		PickupDate:           date,
		PickupTime:           pickupTime,
		Status:               entity.SchedulingStatusScheduled,
		BasePrice:            baseTotal,
		FinalPrice:           finalTotal,
		AdjustmentValue:      valueTotal,
		AdjustmentPercentage: pct,
		AdjustmentReason:     reason,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
}

func (s *schedulingService) findOwnedScheduling(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Scheduling, error) {
	scheduling, err := uow.SchedulingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if scheduling == nil {
		return nil, apperror.NewNotFound("scheduling not found")
	}
	if _, err := findOwnedClient(ctx, uow, userId, scheduling.ClientId); err != nil {
		return nil, err
	}
	return scheduling, nil
}

func (s *schedulingService) GetAll(ctx context.Context, userId uuid.UUID, filter SchedulingFilter) ([]dto.SchedulingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "pickup_date", Desc: false},
	}

	if filter.ClientId != nil {
		if _, err := findOwnedClient(ctx, uow, userId, *filter.ClientId); err != nil {
			return nil, err
		}
		specs = append(specs, specification.ClientOwnedBy{ClientID: *filter.ClientId})
	} else {
		clients, err := uow.ClientRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
		if err != nil {
			return nil, apperror.NewInternal(err)
		}
		if len(clients) == 0 {
			return []dto.SchedulingResponse{}, nil
		}
		ids := make([]uuid.UUID, 0, len(clients))
		for _, c := range clients {
			ids = append(ids, c.Id)
		}
		specs = append(specs, specification.ClientIn{ClientIDs: ids})
	}

	if filter.Status != nil {
		specs = append(specs, specification.ByStatus{Status: *filter.Status})
	}
	switch {
	case filter.From != nil && filter.To != nil:
		specs = append(specs, specification.PickupBetween{From: *filter.From, To: *filter.To})
	case filter.From != nil:
		specs = append(specs, specification.PickupFrom{From: *filter.From})
	}

	schedulings, err := uow.SchedulingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	res := make([]dto.SchedulingResponse, 0, len(schedulings))
	for _, sch := range schedulings {
		res = append(res, schedulingResponseOf(sch))
	}
	return res, nil
}

func (s *schedulingService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.SchedulingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scheduling, err := s.findOwnedScheduling(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	res := schedulingResponseOf(scheduling)
	return &res, nil
}

func (s *schedulingService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSchedulingRequest) (*dto.CreateSchedulingResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := findOwnedClient(ctx, uow, userId, req.ClientId)
	if err != nil {
		return nil, err
	}

	ownedPets := make(map[uuid.UUID]bool, len(client.Pets))
	for _, p := range client.Pets {
		ownedPets[p.Id] = true
	}
	for _, petId := range req.PetIds {
		if !ownedPets[petId] {
			return nil, apperror.NewNotFound("pet not found for this client")
		}
	}

	// Manual appointments take the submitted base price; subscriptions are
	// not consulted.
	value, final := pricing.ApplyAdjustment(req.BasePrice, req.AdjustmentPercentage)

	scheduling := &entity.Scheduling{
		Id:                   uuid.New(),
		ClientId:             client.Id,
		PickupDate:           req.PickupDate,
		PickupTime:           req.PickupTime,
		Status:               entity.SchedulingStatusScheduled,
		BasePrice:            req.BasePrice,
		FinalPrice:           final,
		AdjustmentValue:      value,
		AdjustmentPercentage: req.AdjustmentPercentage,
		AdjustmentReason:     req.AdjustmentReason,
		Notes:                req.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewInternal(err)
	}
	defer uow.Rollback()

	if err := uow.SchedulingRepository().Create(ctx, scheduling); err != nil {
		return nil, apperror.NewInternal(err)
	}

	rows := make([]*entity.SchedulingPet, 0, len(req.PetIds))
	for _, petId := range req.PetIds {
		rows = append(rows, &entity.SchedulingPet{
			Id:           uuid.New(),
			SchedulingId: scheduling.Id,
			PetId:        petId,
			CreatedAt:    now,
		})
	}
	if err := uow.SchedulingRepository().AddPets(ctx, rows); err != nil {
		return nil, apperror.NewInternal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.CreateSchedulingResponse{Id: scheduling.Id}, nil
}

func (s *schedulingService) UpdateStatus(ctx context.Context, userId uuid.UUID, req *dto.UpdateSchedulingStatusRequest) (*dto.SchedulingResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scheduling, err := s.findOwnedScheduling(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	next := entity.SchedulingStatus(req.Status)
	if !scheduling.Status.CanTransitionTo(next) {
		return nil, apperror.NewConflict("invalid status transition")
	}

	previous := scheduling.Status
	scheduling.Status = next
	switch next {
	case entity.SchedulingStatusInProgress:
		scheduling.StartedAt = &now
	case entity.SchedulingStatusCompleted:
		scheduling.CompletedAt = &now
	}
	scheduling.UpdatedAt = now

	stripSchedulingRelations(scheduling)
	if err := uow.SchedulingRepository().Update(ctx, scheduling); err != nil {
		return nil, apperror.NewInternal(err)
	}

	_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeSchedulingStatusChanged, map[string]interface{}{
		"scheduling_id": scheduling.Id.String(),
		"from":          string(previous),
		"to":            string(next),
	}))

	res := schedulingResponseOf(scheduling)
	return &res, nil
}

func (s *schedulingService) Patch(ctx context.Context, userId uuid.UUID, req *dto.PatchSchedulingRequest) (*dto.SchedulingResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scheduling, err := s.findOwnedScheduling(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}
	if scheduling.Status.Terminal() {
		return nil, apperror.NewConflict("scheduling is already closed")
	}

	if req.PickupDate != nil {
		scheduling.PickupDate = *req.PickupDate
	}
	if req.PickupTime != nil {
		scheduling.PickupTime = req.PickupTime
	}
	if req.Notes != nil {
		scheduling.Notes = req.Notes
	}
	if req.AdjustmentPercentage != nil {
		scheduling.AdjustmentPercentage = *req.AdjustmentPercentage
		if req.AdjustmentReason != nil {
			scheduling.AdjustmentReason = *req.AdjustmentReason
		} else if scheduling.AdjustmentReason == "" {
			scheduling.AdjustmentReason = pricing.ReasonOther
		}
		value, final := pricing.ApplyAdjustment(scheduling.BasePrice, scheduling.AdjustmentPercentage)
		scheduling.AdjustmentValue = value
		scheduling.FinalPrice = final
	}
	scheduling.UpdatedAt = now

	stripSchedulingRelations(scheduling)
	if err := uow.SchedulingRepository().Update(ctx, scheduling); err != nil {
		return nil, apperror.NewInternal(err)
	}

	res := schedulingResponseOf(scheduling)
	return &res, nil
}

func (s *schedulingService) Stats(ctx context.Context, userId uuid.UUID, from, to *time.Time) (*dto.SchedulingStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats, err := uow.SchedulingRepository().Stats(ctx, userId, from, to)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.SchedulingStatsResponse{
		Total:               stats.Total,
		Scheduled:           stats.Scheduled,
		Completed:           stats.Completed,
		CompletedRevenue:    stats.CompletedRevenue,
		EstimatedRevenue:    stats.EstimatedRevenue,
		ActiveSubscriptions: stats.ActiveSubscriptions,
	}, nil
}

// stripSchedulingRelations clears preloaded relations before a Save so GORM
// does not cascade-write them.
func stripSchedulingRelations(s *entity.Scheduling) {
	s.Client = nil
	s.Pets = nil
}

// sortSchedulingsByPickup orders earliest first; the reconciler merge pass
// relies on this to pick the canonical scheduling.
func sortSchedulingsByPickup(schedulings []*entity.Scheduling) {
	sort.Slice(schedulings, func(i, j int) bool {
		return schedulings[i].PickupDate.Before(schedulings[j].PickupDate)
	})
}
