package service

import (
	"context"
	"sort"
	"time"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/contract"
	"petgroom-be/internal/repository/specification"
	"petgroom-be/internal/repository/unitofwork"
	"petgroom-be/pkg/events"

	"github.com/google/uuid"
)

// fakeStore is the in-memory backing for the fake unit of work. Stored rows
// carry no relations; reads attach them the way the GORM preloads do.
type fakeStore struct {
	users          []*entity.User
	clients        []*entity.Client
	pets           []*entity.Pet
	packages       []*entity.Package
	prices         []*entity.PackagePrice
	subs           []*entity.ClientSubscription
	schedulings    []*entity.Scheduling
	schedulingPets []*entity.SchedulingPet
	logs           []*entity.SystemLog
}

type fakeUow struct {
	store     *fakeStore
	locked    []uuid.UUID
	commits   int
	rollbacks int
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeEnv() (*fakeFactory, *fakeStore) {
	store := &fakeStore{}
	return &fakeFactory{uow: &fakeUow{store: store}}, store
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { u.commits++; return nil }
func (u *fakeUow) Rollback() error                 { u.rollbacks++; return nil }

func (u *fakeUow) LockClient(ctx context.Context, clientId uuid.UUID) error {
	u.locked = append(u.locked, clientId)
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository { return &fakeUserRepo{u.store} }
func (u *fakeUow) ClientRepository() contract.ClientRepository {
	return &fakeClientRepo{u.store}
}
func (u *fakeUow) PetRepository() contract.PetRepository { return &fakePetRepo{u.store} }
func (u *fakeUow) PackageRepository() contract.PackageRepository {
	return &fakePackageRepo{u.store}
}
func (u *fakeUow) SubscriptionRepository() contract.SubscriptionRepository {
	return &fakeSubscriptionRepo{u.store}
}
func (u *fakeUow) SchedulingRepository() contract.SchedulingRepository {
	return &fakeSchedulingRepo{u.store}
}
func (u *fakeUow) SystemLogRepository() contract.SystemLogRepository {
	return &fakeSystemLogRepo{u.store}
}

// fakePublisher records every published event.
type fakePublisher struct {
	published []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, evt events.Event) error {
	p.published = append(p.published, evt)
	return nil
}

// --- relation attachment (preload emulation) ---

func (s *fakeStore) priceWithPackage(id uuid.UUID) *entity.PackagePrice {
	for _, p := range s.prices {
		if p.Id == id {
			c := *p
			for _, pkg := range s.packages {
				if pkg.Id == p.PackageId {
					pc := *pkg
					pc.Prices = nil
					c.Package = &pc
					break
				}
			}
			return &c
		}
	}
	return nil
}

func (s *fakeStore) subWithRelations(sub *entity.ClientSubscription) *entity.ClientSubscription {
	c := *sub
	c.PackagePrice = s.priceWithPackage(sub.PackagePriceId)
	c.Pet = nil
	return &c
}

func (s *fakeStore) clientWithRelations(cl *entity.Client) *entity.Client {
	c := *cl
	c.Pets = nil
	c.Subscriptions = nil
	for _, p := range s.pets {
		if p.ClientId == cl.Id {
			pc := *p
			c.Pets = append(c.Pets, &pc)
		}
	}
	for _, sub := range s.subs {
		if sub.ClientId == cl.Id {
			c.Subscriptions = append(c.Subscriptions, s.subWithRelations(sub))
		}
	}
	return &c
}

func (s *fakeStore) schedulingWithRelations(sch *entity.Scheduling) *entity.Scheduling {
	c := *sch
	c.Client = nil
	c.Pets = nil
	for _, cl := range s.clients {
		if cl.Id == sch.ClientId {
			cc := *cl
			c.Client = &cc
			break
		}
	}
	for _, row := range s.schedulingPets {
		if row.SchedulingId == sch.Id {
			rc := *row
			for _, p := range s.pets {
				if p.Id == row.PetId {
					pc := *p
					rc.Pet = &pc
					break
				}
			}
			if row.PackagePriceId != nil {
				rc.PackagePrice = s.priceWithPackage(*row.PackagePriceId)
			}
			c.Pets = append(c.Pets, &rc)
		}
	}
	return &c
}

// --- user repository ---

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	c := *user
	r.store.users = append(r.store.users, &c)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			c := *user
			r.store.users[i] = &c
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByGoogleId:
			if u.GoogleId == nil || *u.GoogleId != s.GoogleId {
				return false
			}
		}
	}
	return true
}

// --- client repository ---

type fakeClientRepo struct{ store *fakeStore }

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	c := *client
	c.Pets = nil
	c.Subscriptions = nil
	r.store.clients = append(r.store.clients, &c)
	return nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	for i, cl := range r.store.clients {
		if cl.Id == client.Id {
			c := *client
			c.Pets = nil
			c.Subscriptions = nil
			r.store.clients[i] = &c
		}
	}
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.clients[:0]
	for _, cl := range r.store.clients {
		if cl.Id != id {
			kept = append(kept, cl)
		}
	}
	r.store.clients = kept

	var petIds []uuid.UUID
	for _, p := range r.store.pets {
		if p.ClientId == id {
			petIds = append(petIds, p.Id)
		}
	}
	(&fakePetRepo{r.store}).DeleteByIds(ctx, petIds)

	keptSubs := r.store.subs[:0]
	for _, sub := range r.store.subs {
		if sub.ClientId != id {
			keptSubs = append(keptSubs, sub)
		}
	}
	r.store.subs = keptSubs

	schedRepo := &fakeSchedulingRepo{r.store}
	var schedIds []uuid.UUID
	for _, sch := range r.store.schedulings {
		if sch.ClientId == id {
			schedIds = append(schedIds, sch.Id)
		}
	}
	for _, sid := range schedIds {
		schedRepo.Delete(ctx, sid)
	}
	return nil
}

func (r *fakeClientRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error) {
	for _, cl := range r.store.clients {
		if matchClient(cl, specs) {
			return r.store.clientWithRelations(cl), nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error) {
	var res []*entity.Client
	for _, cl := range r.store.clients {
		if matchClient(cl, specs) {
			res = append(res, r.store.clientWithRelations(cl))
		}
	}
	return res, nil
}

func matchClient(c *entity.Client, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if c.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

// --- pet repository ---

type fakePetRepo struct{ store *fakeStore }

func (r *fakePetRepo) Create(ctx context.Context, pet *entity.Pet) error {
	c := *pet
	r.store.pets = append(r.store.pets, &c)
	return nil
}

func (r *fakePetRepo) CreateAll(ctx context.Context, pets []*entity.Pet) error {
	for _, p := range pets {
		r.Create(ctx, p)
	}
	return nil
}

func (r *fakePetRepo) Update(ctx context.Context, pet *entity.Pet) error {
	for i, p := range r.store.pets {
		if p.Id == pet.Id {
			c := *pet
			r.store.pets[i] = &c
		}
	}
	return nil
}

func (r *fakePetRepo) DeleteByIds(ctx context.Context, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.store.pets[:0]
	for _, p := range r.store.pets {
		if !drop[p.Id] {
			kept = append(kept, p)
		}
	}
	r.store.pets = kept

	// FK cascades
	keptSubs := r.store.subs[:0]
	for _, sub := range r.store.subs {
		if !drop[sub.PetId] {
			keptSubs = append(keptSubs, sub)
		}
	}
	r.store.subs = keptSubs
	keptRows := r.store.schedulingPets[:0]
	for _, row := range r.store.schedulingPets {
		if !drop[row.PetId] {
			keptRows = append(keptRows, row)
		}
	}
	r.store.schedulingPets = keptRows
	return nil
}

func (r *fakePetRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pet, error) {
	for _, p := range r.store.pets {
		if matchPet(p, specs) {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakePetRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pet, error) {
	var res []*entity.Pet
	for _, p := range r.store.pets {
		if matchPet(p, specs) {
			c := *p
			res = append(res, &c)
		}
	}
	return res, nil
}

func matchPet(p *entity.Pet, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if p.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.ClientOwnedBy:
			if p.ClientId != s.ClientID {
				return false
			}
		}
	}
	return true
}

// --- package repository ---

type fakePackageRepo struct{ store *fakeStore }

func (r *fakePackageRepo) Create(ctx context.Context, pkg *entity.Package) error {
	c := *pkg
	prices := c.Prices
	c.Prices = nil
	r.store.packages = append(r.store.packages, &c)
	for _, price := range prices {
		r.CreatePrice(ctx, price)
	}
	return nil
}

func (r *fakePackageRepo) Update(ctx context.Context, pkg *entity.Package) error {
	for i, p := range r.store.packages {
		if p.Id == pkg.Id {
			c := *pkg
			c.Prices = nil
			r.store.packages[i] = &c
		}
	}
	return nil
}

func (r *fakePackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.packages[:0]
	for _, p := range r.store.packages {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.store.packages = kept
	keptPrices := r.store.prices[:0]
	for _, price := range r.store.prices {
		if price.PackageId != id {
			keptPrices = append(keptPrices, price)
		}
	}
	r.store.prices = keptPrices
	return nil
}

func (r *fakePackageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Package, error) {
	for _, p := range r.store.packages {
		if matchPackage(p, specs) {
			c := *p
			for _, price := range r.store.prices {
				if price.PackageId == p.Id {
					pc := *price
					c.Prices = append(c.Prices, &pc)
				}
			}
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakePackageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Package, error) {
	var res []*entity.Package
	for _, p := range r.store.packages {
		if matchPackage(p, specs) {
			found, _ := r.FindOne(ctx, specification.ByID{ID: p.Id})
			res = append(res, found)
		}
	}
	return res, nil
}

func matchPackage(p *entity.Package, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if p.UserId != s.UserID {
				return false
			}
		case specification.ActiveOnly:
			if !p.IsActive {
				return false
			}
		}
	}
	return true
}

func (r *fakePackageRepo) CreatePrice(ctx context.Context, price *entity.PackagePrice) error {
	c := *price
	c.Package = nil
	r.store.prices = append(r.store.prices, &c)
	return nil
}

func (r *fakePackageRepo) UpdatePrice(ctx context.Context, price *entity.PackagePrice) error {
	for i, p := range r.store.prices {
		if p.Id == price.Id {
			c := *price
			c.Package = nil
			r.store.prices[i] = &c
		}
	}
	return nil
}

func (r *fakePackageRepo) DeletePrice(ctx context.Context, id uuid.UUID) error {
	kept := r.store.prices[:0]
	for _, p := range r.store.prices {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.store.prices = kept
	return nil
}

func (r *fakePackageRepo) FindOnePrice(ctx context.Context, specs ...specification.Specification) (*entity.PackagePrice, error) {
	for _, p := range r.store.prices {
		if r.matchPrice(p, specs) {
			return r.store.priceWithPackage(p.Id), nil
		}
	}
	return nil, nil
}

func (r *fakePackageRepo) FindAllPrices(ctx context.Context, specs ...specification.Specification) ([]*entity.PackagePrice, error) {
	var res []*entity.PackagePrice
	for _, p := range r.store.prices {
		if r.matchPrice(p, specs) {
			res = append(res, r.store.priceWithPackage(p.Id))
		}
	}
	return res, nil
}

func (r *fakePackageRepo) matchPrice(p *entity.PackagePrice, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !p.IsActive {
				return false
			}
		case specification.UserOwnedBy:
			owned := false
			for _, pkg := range r.store.packages {
				if pkg.Id == p.PackageId && pkg.UserId == s.UserID {
					owned = true
				}
			}
			if !owned {
				return false
			}
		}
	}
	return true
}

// --- subscription repository ---

type fakeSubscriptionRepo struct{ store *fakeStore }

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *entity.ClientSubscription) error {
	c := *sub
	c.PackagePrice = nil
	c.Pet = nil
	r.store.subs = append(r.store.subs, &c)
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *entity.ClientSubscription) error {
	for i, s := range r.store.subs {
		if s.Id == sub.Id {
			c := *sub
			c.PackagePrice = nil
			c.Pet = nil
			r.store.subs[i] = &c
		}
	}
	return nil
}

func (r *fakeSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClientSubscription, error) {
	for _, s := range r.store.subs {
		if matchSub(s, specs) {
			return r.store.subWithRelations(s), nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientSubscription, error) {
	var res []*entity.ClientSubscription
	for _, s := range r.store.subs {
		if matchSub(s, specs) {
			res = append(res, r.store.subWithRelations(s))
		}
	}
	return res, nil
}

func (r *fakeSubscriptionRepo) CountActiveByClient(ctx context.Context, clientId uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.store.subs {
		if s.ClientId == clientId && s.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubscriptionRepo) CountActiveByPrice(ctx context.Context, packagePriceId uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.store.subs {
		if s.PackagePriceId == packagePriceId && s.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubscriptionRepo) CountActiveByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	owned := make(map[uuid.UUID]bool)
	for _, cl := range r.store.clients {
		if cl.UserId == userId {
			owned[cl.Id] = true
		}
	}
	var n int64
	for _, s := range r.store.subs {
		if owned[s.ClientId] && s.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubscriptionRepo) DeleteByPetIds(ctx context.Context, petIds []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(petIds))
	for _, id := range petIds {
		drop[id] = true
	}
	kept := r.store.subs[:0]
	for _, s := range r.store.subs {
		if !drop[s.PetId] {
			kept = append(kept, s)
		}
	}
	r.store.subs = kept
	return nil
}

func matchSub(s *entity.ClientSubscription, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.ClientOwnedBy:
			if s.ClientId != sp.ClientID {
				return false
			}
		case specification.ByPetID:
			if s.PetId != sp.PetID {
				return false
			}
		case specification.ByPetIDs:
			found := false
			for _, id := range sp.PetIDs {
				if s.PetId == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.ActiveOnly:
			if !s.IsActive {
				return false
			}
		}
	}
	return true
}

// --- scheduling repository ---

type fakeSchedulingRepo struct{ store *fakeStore }

func (r *fakeSchedulingRepo) Create(ctx context.Context, sch *entity.Scheduling) error {
	c := *sch
	c.Client = nil
	c.Pets = nil
	r.store.schedulings = append(r.store.schedulings, &c)
	return nil
}

func (r *fakeSchedulingRepo) Update(ctx context.Context, sch *entity.Scheduling) error {
	for i, s := range r.store.schedulings {
		if s.Id == sch.Id {
			c := *sch
			c.Client = nil
			c.Pets = nil
			r.store.schedulings[i] = &c
		}
	}
	return nil
}

func (r *fakeSchedulingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.schedulings[:0]
	for _, s := range r.store.schedulings {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.store.schedulings = kept
	keptRows := r.store.schedulingPets[:0]
	for _, row := range r.store.schedulingPets {
		if row.SchedulingId != id {
			keptRows = append(keptRows, row)
		}
	}
	r.store.schedulingPets = keptRows
	return nil
}

func (r *fakeSchedulingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scheduling, error) {
	for _, s := range r.store.schedulings {
		if matchScheduling(s, specs) {
			return r.store.schedulingWithRelations(s), nil
		}
	}
	return nil, nil
}

func (r *fakeSchedulingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scheduling, error) {
	var res []*entity.Scheduling
	for _, s := range r.store.schedulings {
		if matchScheduling(s, specs) {
			res = append(res, r.store.schedulingWithRelations(s))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].PickupDate.Before(res[j].PickupDate)
	})
	return res, nil
}

func matchScheduling(s *entity.Scheduling, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.ClientOwnedBy:
			if s.ClientId != sp.ClientID {
				return false
			}
		case specification.ClientIn:
			found := false
			for _, id := range sp.ClientIDs {
				if s.ClientId == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.ByStatus:
			if string(s.Status) != sp.Status {
				return false
			}
		case specification.PickupFrom:
			if s.PickupDate.Before(sp.From) {
				return false
			}
		case specification.PickupBetween:
			if s.PickupDate.Before(sp.From) || s.PickupDate.After(sp.To) {
				return false
			}
		}
	}
	return true
}

func (r *fakeSchedulingRepo) AddPets(ctx context.Context, pets []*entity.SchedulingPet) error {
	for _, row := range pets {
		c := *row
		c.Scheduling = nil
		c.Pet = nil
		c.PackagePrice = nil
		r.store.schedulingPets = append(r.store.schedulingPets, &c)
	}
	return nil
}

func (r *fakeSchedulingRepo) UpdatePet(ctx context.Context, pet *entity.SchedulingPet) error {
	for i, row := range r.store.schedulingPets {
		if row.Id == pet.Id {
			c := *pet
			c.Scheduling = nil
			c.Pet = nil
			c.PackagePrice = nil
			r.store.schedulingPets[i] = &c
		}
	}
	return nil
}

func (r *fakeSchedulingRepo) DeletePetsByIds(ctx context.Context, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.store.schedulingPets[:0]
	for _, row := range r.store.schedulingPets {
		if !drop[row.Id] {
			kept = append(kept, row)
		}
	}
	r.store.schedulingPets = kept
	return nil
}

func (r *fakeSchedulingRepo) FindPets(ctx context.Context, schedulingId uuid.UUID) ([]*entity.SchedulingPet, error) {
	var res []*entity.SchedulingPet
	for _, row := range r.store.schedulingPets {
		if row.SchedulingId == schedulingId {
			c := *row
			for _, p := range r.store.pets {
				if p.Id == row.PetId {
					pc := *p
					c.Pet = &pc
				}
			}
			if row.PackagePriceId != nil {
				c.PackagePrice = r.store.priceWithPackage(*row.PackagePriceId)
			}
			res = append(res, &c)
		}
	}
	return res, nil
}

func (r *fakeSchedulingRepo) FindFuturePets(ctx context.Context, clientId uuid.UUID, petIds []uuid.UUID, from time.Time) ([]*entity.SchedulingPet, error) {
	want := make(map[uuid.UUID]bool, len(petIds))
	for _, id := range petIds {
		want[id] = true
	}
	var res []*entity.SchedulingPet
	for _, row := range r.store.schedulingPets {
		if !want[row.PetId] {
			continue
		}
		var parent *entity.Scheduling
		for _, s := range r.store.schedulings {
			if s.Id == row.SchedulingId {
				parent = s
				break
			}
		}
		if parent == nil || parent.ClientId != clientId {
			continue
		}
		if parent.Status != entity.SchedulingStatusScheduled || parent.PickupDate.Before(from) {
			continue
		}
		c := *row
		pc := *parent
		c.Scheduling = &pc
		if row.PackagePriceId != nil {
			c.PackagePrice = r.store.priceWithPackage(*row.PackagePriceId)
		}
		res = append(res, &c)
	}
	return res, nil
}

func (r *fakeSchedulingRepo) Stats(ctx context.Context, userId uuid.UUID, from, to *time.Time) (*entity.SchedulingStats, error) {
	owned := make(map[uuid.UUID]bool)
	for _, cl := range r.store.clients {
		if cl.UserId == userId {
			owned[cl.Id] = true
		}
	}
	stats := &entity.SchedulingStats{}
	for _, s := range r.store.schedulings {
		if !owned[s.ClientId] {
			continue
		}
		if from != nil && s.PickupDate.Before(*from) {
			continue
		}
		if to != nil && s.PickupDate.After(*to) {
			continue
		}
		stats.Total++
		switch s.Status {
		case entity.SchedulingStatusScheduled:
			stats.Scheduled++
			stats.EstimatedRevenue += s.FinalPrice
		case entity.SchedulingStatusCompleted:
			stats.Completed++
			stats.CompletedRevenue += s.FinalPrice
		}
	}
	stats.ActiveSubscriptions, _ = (&fakeSubscriptionRepo{r.store}).CountActiveByUser(ctx, userId)
	return stats, nil
}

// --- system log repository ---

type fakeSystemLogRepo struct{ store *fakeStore }

func (r *fakeSystemLogRepo) Create(ctx context.Context, log *entity.SystemLog) error {
	c := *log
	r.store.logs = append(r.store.logs, &c)
	return nil
}

// --- seed helpers ---

func seedUser(store *fakeStore) *entity.User {
	u := &entity.User{Id: uuid.New(), Email: "owner@test.local", FullName: "Owner"}
	store.users = append(store.users, u)
	return u
}

func seedClient(store *fakeStore, userId uuid.UUID) *entity.Client {
	c := &entity.Client{Id: uuid.New(), UserId: userId, Name: "Client", IsActive: true}
	store.clients = append(store.clients, c)
	return c
}

func seedPet(store *fakeStore, clientId uuid.UUID, name string) *entity.Pet {
	p := &entity.Pet{Id: uuid.New(), ClientId: clientId, Name: name}
	store.pets = append(store.pets, p)
	return p
}

func seedPackageWithPrice(store *fakeStore, userId uuid.UUID, recurrence int, price float64) *entity.PackagePrice {
	pkg := &entity.Package{Id: uuid.New(), UserId: userId, Name: "Banho e Tosa", IsActive: true}
	store.packages = append(store.packages, pkg)
	pp := &entity.PackagePrice{Id: uuid.New(), PackageId: pkg.Id, Recurrence: recurrence, Price: price, IsActive: true}
	store.prices = append(store.prices, pp)
	return pp
}

func seedSubscription(store *fakeStore, clientId, petId uuid.UUID, price *entity.PackagePrice, weekday int, start time.Time) *entity.ClientSubscription {
	sub := &entity.ClientSubscription{
		Id:              uuid.New(),
		ClientId:        clientId,
		PetId:           petId,
		PackagePriceId:  price.Id,
		PickupDayOfWeek: weekday,
		StartDate:       start,
		BasePrice:       price.Price,
		FinalPrice:      price.Price,
		IsActive:        true,
		CreatedAt:       start,
		UpdatedAt:       start,
	}
	store.subs = append(store.subs, sub)
	return sub
}
