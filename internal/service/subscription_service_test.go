package service

import (
	"context"
	"testing"
	"time"

	"petgroom-be/internal/apperror"
	"petgroom-be/internal/dto"
	"petgroom-be/pkg/events"
	"petgroom-be/pkg/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionCreateAppliesMultiPetDiscount(t *testing.T) {
	factory, store := newFakeEnv()
	owner := seedUser(store)
	client := seedClient(store, owner.Id)
	price := seedPackageWithPrice(store, owner.Id, 7, 100)
	rex := seedPet(store, client.Id, "Rex")
	luna := seedPet(store, client.Id, "Luna")
	seedSubscription(store, client.Id, rex.Id, price, 2, reconcileNow)

	pub := &fakePublisher{}
	svc := NewSubscriptionService(factory, pub)

	res, err := svc.Create(context.Background(), owner.Id, &dto.CreateSubscriptionRequest{
		ClientId:        client.Id,
		PetId:           luna.Id,
		PackagePriceId:  price.Id,
		PickupDayOfWeek: 2,
		StartDate:       time.Now(),
	})
	require.NoError(t, err)

	var created *dtoLookup
	for _, sub := range store.subs {
		if sub.Id == res.Id {
			created = &dtoLookup{
				final:  sub.FinalPrice,
				pct:    sub.AdjustmentPercentage,
				reason: sub.AdjustmentReason,
			}
		}
	}
	require.NotNil(t, created)
	assert.Equal(t, 90.0, created.final)
	assert.Equal(t, -10.0, created.pct)
	assert.Equal(t, pricing.ReasonMultiPetDiscount, created.reason)

	// The new subscription is materialized into concrete appointments and the
	// write ran under the client lock.
	assert.NotEmpty(t, store.schedulings)
	assert.Contains(t, factory.uow.locked, client.Id)
	require.NotEmpty(t, pub.published)
	assert.Equal(t, events.TypeSubscriptionCreated, pub.published[0].EventType())
}

type dtoLookup struct {
	final  float64
	pct    float64
	reason string
}

func TestSubscriptionCreateDeactivatesPrevious(t *testing.T) {
	factory, store := newFakeEnv()
	owner := seedUser(store)
	client := seedClient(store, owner.Id)
	price := seedPackageWithPrice(store, owner.Id, 7, 100)
	rex := seedPet(store, client.Id, "Rex")
	old := seedSubscription(store, client.Id, rex.Id, price, 2, reconcileNow)

	svc := NewSubscriptionService(factory, &fakePublisher{})

	res, err := svc.Create(context.Background(), owner.Id, &dto.CreateSubscriptionRequest{
		ClientId:        client.Id,
		PetId:           rex.Id,
		PackagePriceId:  price.Id,
		PickupDayOfWeek: 5,
		StartDate:       time.Now(),
	})
	require.NoError(t, err)

	var active int
	for _, sub := range store.subs {
		if sub.PetId != rex.Id {
			continue
		}
		if sub.Id == old.Id {
			assert.False(t, sub.IsActive)
			assert.NotNil(t, sub.EndDate)
		}
		if sub.IsActive {
			active++
			assert.Equal(t, res.Id, sub.Id)
			// Replacing the only subscription earns no multi-pet discount.
			assert.Equal(t, 100.0, sub.FinalPrice)
		}
	}
	assert.Equal(t, 1, active)
}

func TestSubscriptionCreateRejectsForeignPrice(t *testing.T) {
	factory, store := newFakeEnv()
	owner := seedUser(store)
	stranger := seedUser(store)
	client := seedClient(store, owner.Id)
	rex := seedPet(store, client.Id, "Rex")
	foreignPrice := seedPackageWithPrice(store, stranger.Id, 7, 100)

	svc := NewSubscriptionService(factory, &fakePublisher{})

	_, err := svc.Create(context.Background(), owner.Id, &dto.CreateSubscriptionRequest{
		ClientId:        client.Id,
		PetId:           rex.Id,
		PackagePriceId:  foreignPrice.Id,
		PickupDayOfWeek: 2,
		StartDate:       time.Now(),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeForbidden, apperror.From(err).Code)
}

func TestSubscriptionDeactivate(t *testing.T) {
	factory, store := newFakeEnv()
	owner := seedUser(store)
	client := seedClient(store, owner.Id)
	price := seedPackageWithPrice(store, owner.Id, 7, 100)
	rex := seedPet(store, client.Id, "Rex")
	sub := seedSubscription(store, client.Id, rex.Id, price, 2, reconcileNow)

	pub := &fakePublisher{}
	svc := NewSubscriptionService(factory, pub)

	require.NoError(t, svc.Deactivate(context.Background(), owner.Id, sub.Id))

	stored := store.subs[0]
	assert.False(t, stored.IsActive)
	assert.NotNil(t, stored.EndDate)
	require.Len(t, pub.published, 1)
	assert.Equal(t, events.TypeSubscriptionEnded, pub.published[0].EventType())

	// Deactivating twice is a no-op, not an error.
	require.NoError(t, svc.Deactivate(context.Background(), owner.Id, sub.Id))
	assert.Len(t, pub.published, 1)
}

func TestSubscriptionCalculatePriceAutoDiscount(t *testing.T) {
	factory, store := newFakeEnv()
	owner := seedUser(store)
	client := seedClient(store, owner.Id)
	price := seedPackageWithPrice(store, owner.Id, 7, 100)
	rex := seedPet(store, client.Id, "Rex")
	seedSubscription(store, client.Id, rex.Id, price, 2, reconcileNow)

	svc := NewSubscriptionService(factory, &fakePublisher{})

	res, err := svc.CalculatePrice(context.Background(), owner.Id, &dto.CalculatePriceRequest{
		ClientId:       client.Id,
		PackagePriceId: price.Id,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.BasePrice)
	assert.Equal(t, 90.0, res.FinalPrice)
	assert.Equal(t, -10.0, res.AdjustmentPercentage)
	assert.Equal(t, pricing.ReasonMultiPetDiscount, res.AdjustmentReason)
	assert.Equal(t, -10.0, res.Calculations.MultiPetDiscount)
	assert.Equal(t, int64(1), res.Calculations.ActiveSubscriptions)
}

func TestSubscriptionCalculatePriceCustomOverridesAuto(t *testing.T) {
	factory, store := newFakeEnv()
	owner := seedUser(store)
	client := seedClient(store, owner.Id)
	price := seedPackageWithPrice(store, owner.Id, 7, 100)
	rex := seedPet(store, client.Id, "Rex")
	seedSubscription(store, client.Id, rex.Id, price, 2, reconcileNow)

	svc := NewSubscriptionService(factory, &fakePublisher{})

	pct := -20.0
	reason := pricing.ReasonLoyaltyDiscount
	res, err := svc.CalculatePrice(context.Background(), owner.Id, &dto.CalculatePriceRequest{
		ClientId:             client.Id,
		PackagePriceId:       price.Id,
		AdjustmentPercentage: &pct,
		AdjustmentReason:     &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, res.FinalPrice)
	assert.Equal(t, -20.0, res.AdjustmentPercentage)
	assert.Equal(t, pricing.ReasonLoyaltyDiscount, res.AdjustmentReason)
	assert.Equal(t, -10.0, res.Calculations.MultiPetDiscount)
	assert.Equal(t, -20.0, res.Calculations.CustomAdjustment)
}

func TestSubscriptionUpdateKeepsDiscountOnTarget(t *testing.T) {
	factory, store := newFakeEnv()
	owner := seedUser(store)
	client := seedClient(store, owner.Id)
	price := seedPackageWithPrice(store, owner.Id, 7, 100)
	rex := seedPet(store, client.Id, "Rex")
	luna := seedPet(store, client.Id, "Luna")

	target := seedSubscription(store, client.Id, rex.Id, price, 2, reconcileNow)
	target.AdjustmentPercentage = -10
	target.AdjustmentValue = -10
	target.FinalPrice = 90
	target.AdjustmentReason = pricing.ReasonMultiPetDiscount
	seedSubscription(store, client.Id, luna.Id, price, 2, reconcileNow)

	svc := NewSubscriptionService(factory, &fakePublisher{})

	notes := "prefers mornings"
	res, err := svc.Update(context.Background(), owner.Id, &dto.UpdateSubscriptionRequest{
		Id:    target.Id,
		Notes: &notes,
	})
	require.NoError(t, err)

	// An unrelated edit re-derives the same discount instead of compounding it.
	assert.Equal(t, 90.0, res.FinalPrice)
	assert.Equal(t, -10.0, res.AdjustmentPercentage)
	assert.Equal(t, pricing.ReasonMultiPetDiscount, res.AdjustmentReason)
}

func TestSubscriptionUpdateRejectsInactive(t *testing.T) {
	factory, store := newFakeEnv()
	owner := seedUser(store)
	client := seedClient(store, owner.Id)
	price := seedPackageWithPrice(store, owner.Id, 7, 100)
	rex := seedPet(store, client.Id, "Rex")
	sub := seedSubscription(store, client.Id, rex.Id, price, 2, reconcileNow)
	sub.IsActive = false

	svc := NewSubscriptionService(factory, &fakePublisher{})

	_, err := svc.Update(context.Background(), owner.Id, &dto.UpdateSubscriptionRequest{Id: sub.Id})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.From(err).Code)
}
