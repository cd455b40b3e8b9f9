package service

import (
	"context"
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

type IClientService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.ClientResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.ClientListItemResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.ClientResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateClientRequest) (*dto.CreateClientResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Patch(ctx context.Context, userId uuid.UUID, req *dto.PatchClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type clientService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewClientService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IClientService {
	return &clientService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// findOwnedClient loads a client with pets and subscriptions and enforces
// account ownership.
func findOwnedClient(ctx context.Context, uow unitofwork.UnitOfWork, userId, clientId uuid.UUID) (*entity.Client, error) {
	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: clientId})
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if client == nil {
		return nil, apperror.NewNotFound("client not found")
	}
	if client.UserId != userId {
		return nil, apperror.NewForbidden("client belongs to another account")
	}
	return client, nil
}

func petResponseOf(p *entity.Pet) dto.PetResponse {
	res := dto.PetResponse{
		Id:        p.Id,
		Name:      p.Name,
		Breed:     p.Breed,
		Weight:    p.Weight,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
	if p.Size != nil {
		size := string(*p.Size)
		res.Size = &size
	}
	return res
}

func clientResponseOf(c *entity.Client) dto.ClientResponse {
	res := dto.ClientResponse{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Avatar:    c.Avatar,
		Notes:     c.Notes,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, p := range c.Pets {
		res.Pets = append(res.Pets, petResponseOf(p))
	}
	for _, sub := range c.Subscriptions {
		res.Subscriptions = append(res.Subscriptions, subscriptionResponseOf(sub))
	}
	return res
}

func (s *clientService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clients, err := uow.ClientRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	res := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		res = append(res, clientResponseOf(c))
	}
	return res, nil
}

func (s *clientService) List(ctx context.Context, userId uuid.UUID) ([]dto.ClientListItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clients, err := uow.ClientRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	res := make([]dto.ClientListItemResponse, 0, len(clients))
	for _, c := range clients {
		res = append(res, dto.ClientListItemResponse{
			Id:       c.Id,
			Name:     c.Name,
			Phone:    c.Phone,
			IsActive: c.IsActive,
			PetCount: len(c.Pets),
		})
	}
	return res, nil
}

func (s *clientService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := findOwnedClient(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	res := clientResponseOf(client)
	return &res, nil
}

func (s *clientService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateClientRequest) (*dto.CreateClientResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewInternal(err)
	}
	defer uow.Rollback()

	client := &entity.Client{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Avatar:    req.Avatar,
		Notes:     req.Notes,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.ClientRepository().Create(ctx, client); err != nil {
		return nil, apperror.NewInternal(err)
	}

	pets := make([]*entity.Pet, 0, len(req.Pets))
	for _, payload := range req.Pets {
		pets = append(pets, petFromPayload(client.Id, payload.PetPayload, now))
	}
	if err := uow.PetRepository().CreateAll(ctx, pets); err != nil {
		return nil, apperror.NewInternal(err)
	}

	// The submitted pets form one pricing batch: the multi-pet discount goes
	// to the first subscribed pet and only there.
	batch := make([]dto.ClientPetPayload, 0, len(req.Pets))
	batchPets := make([]*entity.Pet, 0, len(req.Pets))
	for i, payload := range req.Pets {
		if payload.Subscription != nil {
			batch = append(batch, payload)
			batchPets = append(batchPets, pets[i])
		}
	}

	subs := make([]*entity.ClientSubscription, 0, len(batch))
	for i, payload := range batch {
		sub, err := buildSubscription(ctx, uow, userId, client.Id, batchPets[i].Id, payload.Subscription, len(batch), i == 0, now)
		if err != nil {
			return nil, err
		}
		if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
			return nil, apperror.NewInternal(err)
		}
		subs = append(subs, sub)
	}

	created, err := materializeSchedulings(ctx, uow, client.Id, subs, now)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewInternal(err)
	}

	_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeClientCreated, map[string]interface{}{
		"client_id":     client.Id.String(),
		"pets":          len(pets),
		"subscriptions": len(subs),
	}))
	if created > 0 {
		_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeSchedulingsMaterialized, map[string]interface{}{
			"client_id":   client.Id.String(),
			"schedulings": created,
		}))
	}

	return &dto.CreateClientResponse{Id: client.Id}, nil
}

func petFromPayload(clientId uuid.UUID, payload dto.PetPayload, now time.Time) *entity.Pet {
	pet := &entity.Pet{
		Id:        uuid.New(),
		ClientId:  clientId,
		Name:      payload.Name,
		Breed:     payload.Breed,
		Weight:    payload.Weight,
		Notes:     payload.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if payload.Id != uuid.Nil {
		pet.Id = payload.Id
	}
	if payload.Size != nil {
		size := entity.PetSize(*payload.Size)
		pet.Size = &size
	}
	return pet
}

// buildSubscription assembles a priced subscription entity from a payload.
// The price tier is resolved and ownership checked; pricing follows the batch
// rules (manual component extracted, automatic discount re-added only for the
// batch discount target).
func buildSubscription(ctx context.Context, uow unitofwork.UnitOfWork, userId, clientId, petId uuid.UUID, payload *dto.SubscriptionPayload, totalPets int, isDiscountTarget bool, now time.Time) (*entity.ClientSubscription, error) {
	price, err := findOwnedPrice(ctx, uow, userId, payload.PackagePriceId)
	if err != nil {
		return nil, err
	}

	result := pricing.CalculateSubscriptionPricing(price.Price, pricing.Input{
		AdjustmentPercentage: payload.AdjustmentPercentage,
		AdjustmentReason:     payload.AdjustmentReason,
	}, totalPets, isDiscountTarget)

	next := schedule.NextPickupDate(payload.StartDate, price.Recurrence, time.Weekday(payload.PickupDayOfWeek), now)

	return &entity.ClientSubscription{
		Id:                   uuid.New(),
		ClientId:             clientId,
		PetId:                petId,
		PackagePriceId:       price.Id,
		PickupDayOfWeek:      payload.PickupDayOfWeek,
		PickupTime:           payload.PickupTime,
		StartDate:            payload.StartDate,
		NextPickupDate:       &next,
		BasePrice:            price.Price,
		FinalPrice:           result.FinalPrice,
		AdjustmentValue:      result.AdjustmentValue,
		AdjustmentPercentage: result.AdjustmentPercentage,
		AdjustmentReason:     result.AdjustmentReason,
		IsActive:             true,
		Notes:                payload.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
		PackagePrice:         price,
	}, nil
}

func (s *clientService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := findOwnedClient(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewInternal(err)
	}
	defer uow.Rollback()

	if err := uow.LockClient(ctx, client.Id); err != nil {
		return nil, apperror.NewInternal(err)
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.Avatar = req.Avatar
	client.Notes = req.Notes
	client.UpdatedAt = now

	existingPets := make(map[uuid.UUID]*entity.Pet, len(client.Pets))
	for _, p := range client.Pets {
		existingPets[p.Id] = p
	}
	activeSubs := make(map[uuid.UUID]*entity.ClientSubscription)
	for _, sub := range client.Subscriptions {
		if sub.IsActive {
			activeSubs[sub.PetId] = sub
		}
	}

	update := *client
	update.Pets = nil
	update.Subscriptions = nil
	if err := uow.ClientRepository().Update(ctx, &update); err != nil {
		return nil, apperror.NewInternal(err)
	}

	// Pets missing from the payload are removed together with their
	// subscriptions and future attendance rows.
	keptPets := make(map[uuid.UUID]bool, len(req.Pets))
	for _, payload := range req.Pets {
		if payload.Id != uuid.Nil {
			keptPets[payload.Id] = true
		}
	}
	var removedPetIds []uuid.UUID
	for id := range existingPets {
		if !keptPets[id] {
			removedPetIds = append(removedPetIds, id)
		}
	}
	if len(removedPetIds) > 0 {
		if err := s.removePets(ctx, uow, client.Id, removedPetIds, now); err != nil {
			return nil, err
		}
		for _, id := range removedPetIds {
			delete(activeSubs, id)
		}
	}

	// Upsert pets, tracking which ones need fresh or changed subscriptions.
	type subWork struct {
		petId   uuid.UUID
		payload *dto.SubscriptionPayload
	}
	var batch []subWork
	var affectedPetIds []uuid.UUID
	var newSubs []*entity.ClientSubscription

	for _, payload := range req.Pets {
		var pet *entity.Pet
		if payload.Id != uuid.Nil {
			pet = existingPets[payload.Id]
		}
		if pet == nil {
			pet = petFromPayload(client.Id, payload.PetPayload, now)
			if err := uow.PetRepository().Create(ctx, pet); err != nil {
				return nil, apperror.NewInternal(err)
			}
		} else {
			pet.Name = payload.Name
			pet.Breed = payload.Breed
			pet.Weight = payload.Weight
			pet.Notes = payload.Notes
			if payload.Size != nil {
				size := entity.PetSize(*payload.Size)
				pet.Size = &size
			}
			pet.UpdatedAt = now
			if err := uow.PetRepository().Update(ctx, pet); err != nil {
				return nil, apperror.NewInternal(err)
			}
		}

		if payload.Subscription != nil {
			batch = append(batch, subWork{petId: pet.Id, payload: payload.Subscription})
		}
	}

	for i, work := range batch {
		existing := activeSubs[work.petId]
		if existing == nil {
			sub, err := buildSubscription(ctx, uow, userId, client.Id, work.petId, work.payload, len(batch), i == 0, now)
			if err != nil {
				return nil, err
			}
			if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
				return nil, apperror.NewInternal(err)
			}
			newSubs = append(newSubs, sub)
			affectedPetIds = append(affectedPetIds, work.petId)
			continue
		}

		changed, err := s.applySubscriptionPayload(ctx, uow, userId, existing, work.payload, len(batch), i == 0, now)
		if err != nil {
			return nil, err
		}
		if changed {
			affectedPetIds = append(affectedPetIds, work.petId)
		}
	}

	created, err := materializeSchedulings(ctx, uow, client.Id, newSubs, now)
	if err != nil {
		return nil, err
	}

	summary, err := reconcileSchedulings(ctx, uow, client.Id, affectedPetIds, now)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewInternal(err)
	}

	_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeClientUpdated, map[string]interface{}{
		"client_id": client.Id.String(),
	}))
	if created > 0 || !summary.Empty() {
		_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeSchedulingsReconciled, map[string]interface{}{
			"client_id":    client.Id.String(),
			"materialized": created,
			"created":      summary.Created,
			"moved":        summary.Moved,
			"deleted":      summary.Deleted,
			"repriced":     summary.Updated,
		}))
	}

	fresh, err := findOwnedClient(ctx, s.uowFactory.NewUnitOfWork(ctx), userId, client.Id)
	if err != nil {
		return nil, err
	}
	res := clientResponseOf(fresh)
	return &res, nil
}

// applySubscriptionPayload updates an existing active subscription in place,
// recomputing pricing and, when the schedule configuration moved, the next
// pickup date. Reports whether anything scheduling-relevant changed.
func (s *clientService) applySubscriptionPayload(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sub *entity.ClientSubscription, payload *dto.SubscriptionPayload, totalPets int, isDiscountTarget bool, now time.Time) (bool, error) {
	configChanged := sub.PackagePriceId != payload.PackagePriceId ||
		sub.PickupDayOfWeek != payload.PickupDayOfWeek ||
		!sub.StartDate.Equal(payload.StartDate)

	price := sub.PackagePrice
	if sub.PackagePriceId != payload.PackagePriceId {
		var err error
		price, err = findOwnedPrice(ctx, uow, userId, payload.PackagePriceId)
		if err != nil {
			return false, err
		}
		sub.PackagePriceId = price.Id
		sub.BasePrice = price.Price
	}

	sub.PickupDayOfWeek = payload.PickupDayOfWeek
	sub.PickupTime = payload.PickupTime
	sub.StartDate = payload.StartDate
	sub.Notes = payload.Notes

	result := pricing.CalculateSubscriptionPricing(sub.BasePrice, pricing.Input{
		AdjustmentPercentage: payload.AdjustmentPercentage,
		AdjustmentReason:     payload.AdjustmentReason,
	}, totalPets, isDiscountTarget)
	sub.FinalPrice = result.FinalPrice
	sub.AdjustmentValue = result.AdjustmentValue
	sub.AdjustmentPercentage = result.AdjustmentPercentage
	sub.AdjustmentReason = result.AdjustmentReason

	if configChanged {
		recurrence := 7
		if price != nil {
			recurrence = price.Recurrence
		}
		next := schedule.NextPickupDate(sub.StartDate, recurrence, time.Weekday(sub.PickupDayOfWeek), now)
		sub.NextPickupDate = &next
	}
	sub.UpdatedAt = now

	update := *sub
	update.PackagePrice = nil
	update.Pet = nil
	if err := uow.SubscriptionRepository().Update(ctx, &update); err != nil {
		return false, apperror.NewInternal(err)
	}
	sub.PackagePrice = price

	return configChanged, nil
}

// removePets deletes pets with their subscriptions and future attendance
// rows, cleaning up any scheduling left empty.
func (s *clientService) removePets(ctx context.Context, uow unitofwork.UnitOfWork, clientId uuid.UUID, petIds []uuid.UUID, now time.Time) error {
	rows, err := uow.SchedulingRepository().FindFuturePets(ctx, clientId, petIds, now)
	if err != nil {
		return apperror.NewInternal(err)
	}

	rowIds := make([]uuid.UUID, 0, len(rows))
	touched := make(map[uuid.UUID]bool)
	for _, row := range rows {
		rowIds = append(rowIds, row.Id)
		touched[row.SchedulingId] = true
	}
	if err := uow.SchedulingRepository().DeletePetsByIds(ctx, rowIds); err != nil {
		return apperror.NewInternal(err)
	}

	if err := uow.SubscriptionRepository().DeleteByPetIds(ctx, petIds); err != nil {
		return apperror.NewInternal(err)
	}
	if err := uow.PetRepository().DeleteByIds(ctx, petIds); err != nil {
		return apperror.NewInternal(err)
	}

	remainingSubs, err := loadActiveSubsByPet(ctx, uow, clientId)
	if err != nil {
		return err
	}
	summary := &reconcileSummary{}
	for schedulingId := range touched {
		if err := deleteOrReprice(ctx, uow, schedulingId, remainingSubs, summary); err != nil {
			return err
		}
	}
	return nil
}

func (s *clientService) Patch(ctx context.Context, userId uuid.UUID, req *dto.PatchClientRequest) (*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := findOwnedClient(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.Address != nil {
		client.Address = req.Address
	}
	if req.Avatar != nil {
		client.Avatar = req.Avatar
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}
	client.UpdatedAt = time.Now()

	update := *client
	update.Pets = nil
	update.Subscriptions = nil
	if err := uow.ClientRepository().Update(ctx, &update); err != nil {
		return nil, apperror.NewInternal(err)
	}

	res := clientResponseOf(client)
	return &res, nil
}

func (s *clientService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := findOwnedClient(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	// FK cascades take pets, subscriptions and schedulings along.
	if err := uow.ClientRepository().Delete(ctx, client.Id); err != nil {
		return apperror.NewInternal(err)
	}

	_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeClientDeleted, map[string]interface{}{
		"client_id": client.Id.String(),
	}))

	return nil
}
