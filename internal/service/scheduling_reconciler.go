package service

import (
	"context"
	"time"

	"petgroom-be/internal/apperror"
	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/specification"
	"petgroom-be/internal/repository/unitofwork"
	"petgroom-be/pkg/pricing"

	"github.com/google/uuid"
)

// reconcileSummary reports what a reconciliation pass changed, for the audit
// event and for deciding whether anything happened at all.
type reconcileSummary struct {
	Created int
	Moved   int
	Deleted int
	Updated int
}

func (r reconcileSummary) Empty() bool {
	return r.Created == 0 && r.Moved == 0 && r.Deleted == 0 && r.Updated == 0
}

// reconcileSchedulings realigns future appointments with the client's current
// subscription configuration. Only rows in status scheduled with a pickup at
// or after now are touched; in-progress and historical appointments are
// immutable. Must run inside the caller's transaction, after LockClient.
//
// The pass is idempotent: once every future row matches its subscription's
// weekday and recurrence tier and no split-off scheduling remains, a rerun
// changes nothing.
func reconcileSchedulings(ctx context.Context, uow unitofwork.UnitOfWork, clientId uuid.UUID, affectedPetIds []uuid.UUID, now time.Time) (*reconcileSummary, error) {
	summary := &reconcileSummary{}

	activeSubs, err := loadActiveSubsByPet(ctx, uow, clientId)
	if err != nil {
		return nil, err
	}
	if len(activeSubs) == 0 || len(affectedPetIds) == 0 {
		return summary, nil
	}

	if err := splitDivergentPets(ctx, uow, clientId, affectedPetIds, activeSubs, now, summary); err != nil {
		return nil, err
	}

	if err := mergeConfigGroups(ctx, uow, clientId, activeSubs, now, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func loadActiveSubsByPet(ctx context.Context, uow unitofwork.UnitOfWork, clientId uuid.UUID) (map[uuid.UUID]*entity.ClientSubscription, error) {
	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.ClientOwnedBy{ClientID: clientId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	byPet := make(map[uuid.UUID]*entity.ClientSubscription, len(subs))
	for _, sub := range subs {
		byPet[sub.PetId] = sub
	}
	return byPet, nil
}

// splitDivergentPets removes future attendance rows whose scheduling no
// longer matches the pet's subscription (wrong weekday or wrong recurrence
// tier) and regroups those pets into new schedulings keyed by their new
// configuration.
func splitDivergentPets(ctx context.Context, uow unitofwork.UnitOfWork, clientId uuid.UUID, affectedPetIds []uuid.UUID, activeSubs map[uuid.UUID]*entity.ClientSubscription, now time.Time, summary *reconcileSummary) error {
	rows, err := uow.SchedulingRepository().FindFuturePets(ctx, clientId, affectedPetIds, now)
	if err != nil {
		return apperror.NewInternal(err)
	}

	var removedRowIds []uuid.UUID
	touchedSchedulings := make(map[uuid.UUID]bool)
	movedPets := make(map[groupKey]map[uuid.UUID]*entity.ClientSubscription)

	for _, row := range rows {
		sub, ok := activeSubs[row.PetId]
		if !ok || row.Scheduling == nil {
			continue
		}
		if !schedulingMatchesSubscription(row, sub) {
			removedRowIds = append(removedRowIds, row.Id)
			touchedSchedulings[row.SchedulingId] = true

			key := groupKey{recurrence: sub.Recurrence(), weekday: sub.PickupDayOfWeek}
			if movedPets[key] == nil {
				movedPets[key] = make(map[uuid.UUID]*entity.ClientSubscription)
			}
			movedPets[key][sub.PetId] = sub
		}
	}

	if len(removedRowIds) == 0 {
		return nil
	}

	if err := uow.SchedulingRepository().DeletePetsByIds(ctx, removedRowIds); err != nil {
		return apperror.NewInternal(err)
	}
	summary.Moved += len(removedRowIds)

	// One fresh scheduling per new configuration, at that group's next
	// pickup; a week out when no subscription resolves one.
	for _, group := range movedPets {
		subs := make([]*entity.ClientSubscription, 0, len(group))
		for _, sub := range group {
			subs = append(subs, sub)
		}

		date := firstPickupOf(subs, now)
		if date.IsZero() {
			date = now.AddDate(0, 0, 7)
		}

		scheduling := newAggregateScheduling(clientId, date, subs)
		if err := uow.SchedulingRepository().Create(ctx, scheduling); err != nil {
			return apperror.NewInternal(err)
		}
		summary.Created++

		newRows := make([]*entity.SchedulingPet, 0, len(subs))
		for _, sub := range subs {
			priceId := sub.PackagePriceId
			newRows = append(newRows, &entity.SchedulingPet{
				Id:             uuid.New(),
				SchedulingId:   scheduling.Id,
				PetId:          sub.PetId,
				PackagePriceId: &priceId,
				CreatedAt:      now,
			})
		}
		if err := uow.SchedulingRepository().AddPets(ctx, newRows); err != nil {
			return apperror.NewInternal(err)
		}
	}

	// Schedulings that lost pets either disappear or get re-priced from the
	// remaining pets' current subscription prices.
	for schedulingId := range touchedSchedulings {
		if err := deleteOrReprice(ctx, uow, schedulingId, activeSubs, summary); err != nil {
			return err
		}
	}

	return nil
}

func schedulingMatchesSubscription(row *entity.SchedulingPet, sub *entity.ClientSubscription) bool {
	if int(row.Scheduling.PickupDate.Weekday()) != sub.PickupDayOfWeek {
		return false
	}
	recordedRecurrence := 7
	if row.PackagePrice != nil && row.PackagePrice.Recurrence > 0 {
		recordedRecurrence = row.PackagePrice.Recurrence
	}
	return recordedRecurrence == sub.Recurrence()
}

// mergeConfigGroups collapses split-off schedulings back together: when pets
// sharing one configuration ride separate future schedulings, rows move into
// the earliest one. Schedulings already holding the same pets (the
// materialized horizon) are left alone.
func mergeConfigGroups(ctx context.Context, uow unitofwork.UnitOfWork, clientId uuid.UUID, activeSubs map[uuid.UUID]*entity.ClientSubscription, now time.Time, summary *reconcileSummary) error {
	allPetIds := make([]uuid.UUID, 0, len(activeSubs))
	for petId := range activeSubs {
		allPetIds = append(allPetIds, petId)
	}

	rows, err := uow.SchedulingRepository().FindFuturePets(ctx, clientId, allPetIds, now)
	if err != nil {
		return apperror.NewInternal(err)
	}

	type schedulingRows struct {
		scheduling *entity.Scheduling
		rows       []*entity.SchedulingPet
	}
	byKey := make(map[groupKey]map[uuid.UUID]*schedulingRows)

	for _, row := range rows {
		sub, ok := activeSubs[row.PetId]
		if !ok || row.Scheduling == nil {
			continue
		}
		if !schedulingMatchesSubscription(row, sub) {
			// Still divergent (pet outside the affected set); the next
			// update touching it will split it.
			continue
		}
		key := groupKey{recurrence: sub.Recurrence(), weekday: sub.PickupDayOfWeek}
		if byKey[key] == nil {
			byKey[key] = make(map[uuid.UUID]*schedulingRows)
		}
		entry := byKey[key][row.SchedulingId]
		if entry == nil {
			entry = &schedulingRows{scheduling: row.Scheduling}
			byKey[key][row.SchedulingId] = entry
		}
		entry.rows = append(entry.rows, row)
	}

	for _, group := range byKey {
		if len(group) < 2 {
			continue
		}

		schedulings := make([]*entity.Scheduling, 0, len(group))
		for _, entry := range group {
			schedulings = append(schedulings, entry.scheduling)
		}
		sortSchedulingsByPickup(schedulings)

		canonical := group[schedulings[0].Id]
		canonicalPets := make(map[uuid.UUID]bool, len(canonical.rows))
		for _, row := range canonical.rows {
			canonicalPets[row.PetId] = true
		}

		changed := false
		for _, sch := range schedulings[1:] {
			donor := group[sch.Id]
			donorChanged := false
			for _, row := range donor.rows {
				if canonicalPets[row.PetId] {
					// Same pet at a later occurrence: part of the horizon,
					// not a split.
					continue
				}
				sub := activeSubs[row.PetId]
				priceId := sub.PackagePriceId
				row.SchedulingId = canonical.scheduling.Id
				row.PackagePriceId = &priceId
				row.Scheduling = nil
				row.Pet = nil
				row.PackagePrice = nil
				if err := uow.SchedulingRepository().UpdatePet(ctx, row); err != nil {
					return apperror.NewInternal(err)
				}
				canonicalPets[row.PetId] = true
				summary.Moved++
				changed = true
				donorChanged = true
			}
			if donorChanged {
				if err := deleteOrReprice(ctx, uow, sch.Id, activeSubs, summary); err != nil {
					return err
				}
			}
		}

		if changed {
			if err := deleteOrReprice(ctx, uow, canonical.scheduling.Id, activeSubs, summary); err != nil {
				return err
			}
		}
	}

	return nil
}

// deleteOrReprice drops a scheduling left without pets, or recalculates its
// aggregate price from the remaining pets' current subscriptions.
func deleteOrReprice(ctx context.Context, uow unitofwork.UnitOfWork, schedulingId uuid.UUID, activeSubs map[uuid.UUID]*entity.ClientSubscription, summary *reconcileSummary) error {
	remaining, err := uow.SchedulingRepository().FindPets(ctx, schedulingId)
	if err != nil {
		return apperror.NewInternal(err)
	}

	if len(remaining) == 0 {
		if err := uow.SchedulingRepository().Delete(ctx, schedulingId); err != nil {
			return apperror.NewInternal(err)
		}
		summary.Deleted++
		return nil
	}

	scheduling, err := uow.SchedulingRepository().FindOne(ctx, specification.ByID{ID: schedulingId})
	if err != nil {
		return apperror.NewInternal(err)
	}
	if scheduling == nil {
		return nil
	}

	var baseTotal, finalTotal, valueTotal float64
	reason := ""
	for _, row := range remaining {
		sub, ok := activeSubs[row.PetId]
		if !ok {
			continue
		}
		baseTotal += sub.BasePrice
		finalTotal += sub.FinalPrice
		valueTotal += sub.AdjustmentValue
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

	scheduling.BasePrice = baseTotal
	scheduling.FinalPrice = finalTotal
	scheduling.AdjustmentValue = valueTotal
	scheduling.AdjustmentPercentage = pct
	scheduling.AdjustmentReason = reason
	scheduling.UpdatedAt = time.Now()

	stripSchedulingRelations(scheduling)
	if err := uow.SchedulingRepository().Update(ctx, scheduling); err != nil {
		return apperror.NewInternal(err)
	}
	summary.Updated++
	return nil
}
