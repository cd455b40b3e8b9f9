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

type ISubscriptionService interface {
	GetAll(ctx context.Context, userId uuid.UUID, clientId *uuid.UUID) ([]dto.SubscriptionResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.SubscriptionResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.CreateSubscriptionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Deactivate(ctx context.Context, userId, id uuid.UUID) error
	CalculatePrice(ctx context.Context, userId uuid.UUID, req *dto.CalculatePriceRequest) (*dto.CalculatePriceResponse, error)
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) ISubscriptionService {
	return &subscriptionService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func subscriptionResponseOf(s *entity.ClientSubscription) dto.SubscriptionResponse {
	res := dto.SubscriptionResponse{
		Id:                   s.Id,
		ClientId:             s.ClientId,
		PetId:                s.PetId,
		PackagePriceId:       s.PackagePriceId,
		Recurrence:           s.Recurrence(),
		PickupDayOfWeek:      s.PickupDayOfWeek,
		PickupTime:           s.PickupTime,
		StartDate:            s.StartDate,
		NextPickupDate:       s.NextPickupDate,
		EndDate:              s.EndDate,
		BasePrice:            s.BasePrice,
		FinalPrice:           s.FinalPrice,
		AdjustmentValue:      s.AdjustmentValue,
		AdjustmentPercentage: s.AdjustmentPercentage,
		AdjustmentReason:     s.AdjustmentReason,
		IsActive:             s.IsActive,
		Notes:                s.Notes,
		CreatedAt:            s.CreatedAt,
	}
	if s.PackagePrice != nil && s.PackagePrice.Package != nil {
		res.PackageName = s.PackagePrice.Package.Name
	}
	return res
}

// findOwnedPrice loads a price tier and checks it belongs to a package of the
// authenticated account.
func findOwnedPrice(ctx context.Context, uow unitofwork.UnitOfWork, userId, priceId uuid.UUID) (*entity.PackagePrice, error) {
	price, err := uow.PackageRepository().FindOnePrice(ctx, specification.ByID{ID: priceId})
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if price == nil {
		return nil, apperror.NewNotFound("package price not found")
	}
	if price.Package != nil && price.Package.UserId != userId {
		return nil, apperror.NewForbidden("package price belongs to another account")
	}
	return price, nil
}

func (s *subscriptionService) GetAll(ctx context.Context, userId uuid.UUID, clientId *uuid.UUID) ([]dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if clientId != nil {
		if _, err := findOwnedClient(ctx, uow, userId, *clientId); err != nil {
			return nil, err
		}
		specs = append(specs, specification.ClientOwnedBy{ClientID: *clientId})
	}

	subs, err := uow.SubscriptionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	res := make([]dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		if clientId == nil {
			// Without a client filter, ownership is checked row by row.
			if _, err := findOwnedClient(ctx, uow, userId, sub.ClientId); err != nil {
				continue
			}
		}
		res = append(res, subscriptionResponseOf(sub))
	}
	return res, nil
}

func (s *subscriptionService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.findOwnedSubscription(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	res := subscriptionResponseOf(sub)
	return &res, nil
}

func (s *subscriptionService) findOwnedSubscription(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.ClientSubscription, error) {
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if sub == nil {
		return nil, apperror.NewNotFound("subscription not found")
	}
	if _, err := findOwnedClient(ctx, uow, userId, sub.ClientId); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.CreateSubscriptionResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	client, err := findOwnedClient(ctx, uow, userId, req.ClientId)
	if err != nil {
		return nil, err
	}

	var pet *entity.Pet
	for _, p := range client.Pets {
		if p.Id == req.PetId {
			pet = p
			break
		}
	}
	if pet == nil {
		return nil, apperror.NewNotFound("pet not found for this client")
	}

	price, err := findOwnedPrice(ctx, uow, userId, req.PackagePriceId)
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

	// One active subscription per pet: an existing one ends now.
	existing, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.ClientOwnedBy{ClientID: client.Id},
		specification.ByPetID{PetID: req.PetId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	for _, old := range existing {
		old.IsActive = false
		end := now
		old.EndDate = &end
		old.UpdatedAt = now
		if err := uow.SubscriptionRepository().Update(ctx, old); err != nil {
			return nil, apperror.NewInternal(err)
		}
	}

	activeOthers, err := uow.SubscriptionRepository().CountActiveByClient(ctx, client.Id)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	totalPets := int(activeOthers) + 1

	result := pricing.CalculateSubscriptionPricing(price.Price, pricing.Input{
		AdjustmentPercentage: req.AdjustmentPercentage,
		AdjustmentReason:     req.AdjustmentReason,
	}, totalPets, true)

	next := schedule.NextPickupDate(req.StartDate, price.Recurrence, time.Weekday(req.PickupDayOfWeek), now)

	sub := &entity.ClientSubscription{
		Id:                   uuid.New(),
		ClientId:             client.Id,
		PetId:                req.PetId,
		PackagePriceId:       price.Id,
		PickupDayOfWeek:      req.PickupDayOfWeek,
		PickupTime:           req.PickupTime,
		StartDate:            req.StartDate,
		NextPickupDate:       &next,
		BasePrice:            price.Price,
		FinalPrice:           result.FinalPrice,
		AdjustmentValue:      result.AdjustmentValue,
		AdjustmentPercentage: result.AdjustmentPercentage,
		AdjustmentReason:     result.AdjustmentReason,
		IsActive:             true,
		Notes:                req.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
		PackagePrice:         price,
	}
	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, apperror.NewInternal(err)
	}
	sub.PackagePrice = price

	if _, err := materializeSchedulings(ctx, uow, client.Id, []*entity.ClientSubscription{sub}, now); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewInternal(err)
	}

	_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeSubscriptionCreated, map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"client_id":       client.Id.String(),
		"pet_id":          req.PetId.String(),
	}))

	return &dto.CreateSubscriptionResponse{Id: sub.Id}, nil
}

func (s *subscriptionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.findOwnedSubscription(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}
	if !sub.IsActive {
		return nil, apperror.NewConflict("subscription is no longer active")
	}

	price := sub.PackagePrice
	scheduleChanged := false

	if req.PackagePriceId != nil && *req.PackagePriceId != sub.PackagePriceId {
		price, err = findOwnedPrice(ctx, uow, userId, *req.PackagePriceId)
		if err != nil {
			return nil, err
		}
		sub.PackagePriceId = price.Id
		sub.BasePrice = price.Price
		scheduleChanged = true
	}
	if req.StartDate != nil && !req.StartDate.Equal(sub.StartDate) {
		sub.StartDate = *req.StartDate
		scheduleChanged = true
	}
	if req.PickupDayOfWeek != nil && *req.PickupDayOfWeek != sub.PickupDayOfWeek {
		sub.PickupDayOfWeek = *req.PickupDayOfWeek
		scheduleChanged = true
	}
	if req.PickupTime != nil {
		sub.PickupTime = req.PickupTime
	}
	if req.Notes != nil {
		sub.Notes = req.Notes
	}

	adjustmentPct := sub.AdjustmentPercentage
	adjustmentReason := sub.AdjustmentReason
	if req.AdjustmentPercentage != nil {
		adjustmentPct = *req.AdjustmentPercentage
	}
	if req.AdjustmentReason != nil {
		adjustmentReason = *req.AdjustmentReason
	}

	totalPets, err := uow.SubscriptionRepository().CountActiveByClient(ctx, sub.ClientId)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	// The discount target is the subscription already carrying the multi-pet
	// reason; editing any other one never moves the discount.
	isDiscountTarget := sub.AdjustmentReason == pricing.ReasonMultiPetDiscount || totalPets <= 1
	result := pricing.CalculateSubscriptionPricing(sub.BasePrice, pricing.Input{
		AdjustmentPercentage: adjustmentPct,
		AdjustmentReason:     adjustmentReason,
	}, int(totalPets), isDiscountTarget)

	sub.FinalPrice = result.FinalPrice
	sub.AdjustmentValue = result.AdjustmentValue
	sub.AdjustmentPercentage = result.AdjustmentPercentage
	sub.AdjustmentReason = result.AdjustmentReason

	if scheduleChanged {
		recurrence := 7
		if price != nil {
			recurrence = price.Recurrence
		}
		next := schedule.NextPickupDate(sub.StartDate, recurrence, time.Weekday(sub.PickupDayOfWeek), now)
		sub.NextPickupDate = &next
	}
	sub.UpdatedAt = now
	sub.PackagePrice = nil
	sub.Pet = nil

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, apperror.NewInternal(err)
	}
	sub.PackagePrice = price

	_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeSubscriptionUpdated, map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"client_id":       sub.ClientId.String(),
	}))

	res := subscriptionResponseOf(sub)
	return &res, nil
}

func (s *subscriptionService) Deactivate(ctx context.Context, userId, id uuid.UUID) error {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.findOwnedSubscription(ctx, uow, userId, id)
	if err != nil {
		return err
	}
	if !sub.IsActive {
		return nil
	}

	sub.IsActive = false
	sub.EndDate = &now
	sub.UpdatedAt = now
	sub.PackagePrice = nil
	sub.Pet = nil

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return apperror.NewInternal(err)
	}

	_ = s.publisher.Publish(ctx, events.NewEvent(events.TypeSubscriptionEnded, map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"client_id":       sub.ClientId.String(),
	}))

	return nil
}

func (s *subscriptionService) CalculatePrice(ctx context.Context, userId uuid.UUID, req *dto.CalculatePriceRequest) (*dto.CalculatePriceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedClient(ctx, uow, userId, req.ClientId); err != nil {
		return nil, err
	}

	price, err := findOwnedPrice(ctx, uow, userId, req.PackagePriceId)
	if err != nil {
		return nil, err
	}

	activeCount, err := uow.SubscriptionRepository().CountActiveByClient(ctx, req.ClientId)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	totalPets := int(activeCount) + 1
	autoPct := pricing.MultiPetDiscount(totalPets)

	customPct := 0.0
	if req.AdjustmentPercentage != nil {
		customPct = *req.AdjustmentPercentage
	}

	appliedPct := autoPct
	reason := ""
	if autoPct != 0 {
		reason = pricing.ReasonMultiPetDiscount
	}
	if customPct != 0 {
		appliedPct = customPct
		reason = pricing.ReasonOther
		if req.AdjustmentReason != nil && *req.AdjustmentReason != "" {
			reason = *req.AdjustmentReason
		}
	}

	value, final := pricing.ApplyAdjustment(price.Price, appliedPct)

	return &dto.CalculatePriceResponse{
		BasePrice:            price.Price,
		FinalPrice:           pricing.ClampPrice(final),
		AdjustmentValue:      value,
		AdjustmentPercentage: appliedPct,
		AdjustmentReason:     reason,
		Calculations: dto.PriceCalculations{
			BasePrice:           price.Price,
			MultiPetDiscount:    autoPct,
			CustomAdjustment:    customPct,
			AppliedPercentage:   appliedPct,
			ActiveSubscriptions: activeCount,
		},
	}, nil
}
