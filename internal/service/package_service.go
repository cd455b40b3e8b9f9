package service

import (
	"context"
	"time"

	"petgroom-be/internal/apperror"
	"petgroom-be/internal/dto"
	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/specification"
	"petgroom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPackageService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.PackageResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.PackageResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePackageRequest) (*dto.CreatePackageResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePackageRequest) (*dto.PackageResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error

	CreatePrice(ctx context.Context, userId uuid.UUID, req *dto.CreatePackagePriceRequest) (*dto.PackagePriceResponse, error)
	UpdatePrice(ctx context.Context, userId uuid.UUID, req *dto.UpdatePackagePriceRequest) (*dto.PackagePriceResponse, error)
	DeletePrice(ctx context.Context, userId, packageId, priceId uuid.UUID) error
	ListPrices(ctx context.Context, userId uuid.UUID) ([]dto.CatalogPriceResponse, error)
}

type packageService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPackageService(uowFactory unitofwork.RepositoryFactory) IPackageService {
	return &packageService{
		uowFactory: uowFactory,
	}
}

func packageResponseOf(p *entity.Package) dto.PackageResponse {
	res := dto.PackageResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		Prices:      make([]dto.PackagePriceResponse, 0, len(p.Prices)),
	}
	for _, price := range p.Prices {
		res.Prices = append(res.Prices, dto.PackagePriceResponse{
			Id:         price.Id,
			Recurrence: price.Recurrence,
			Price:      price.Price,
			IsActive:   price.IsActive,
		})
	}
	return res
}

// findOwnedPackage loads a package and enforces account ownership.
func findOwnedPackage(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Package, error) {
	pkg, err := uow.PackageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if pkg == nil {
		return nil, apperror.NewNotFound("package not found")
	}
	if pkg.UserId != userId {
		return nil, apperror.NewForbidden("package belongs to another account")
	}
	return pkg, nil
}

func (s *packageService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.PackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	packages, err := uow.PackageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	res := make([]dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		res = append(res, packageResponseOf(p))
	}
	return res, nil
}

func (s *packageService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.PackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pkg, err := findOwnedPackage(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	res := packageResponseOf(pkg)
	return &res, nil
}

func (s *packageService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePackageRequest) (*dto.CreatePackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	seen := make(map[int]bool)
	for _, p := range req.Prices {
		if seen[p.Recurrence] {
			return nil, apperror.NewValidation("validation failed", map[string]string{
				"prices": "duplicate recurrence tier",
			})
		}
		seen[p.Recurrence] = true
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewInternal(err)
	}
	defer uow.Rollback()

	pkg := &entity.Package{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.PackageRepository().Create(ctx, pkg); err != nil {
		return nil, apperror.NewInternal(err)
	}

	for _, p := range req.Prices {
		price := &entity.PackagePrice{
			Id:         uuid.New(),
			PackageId:  pkg.Id,
			Recurrence: p.Recurrence,
			Price:      p.Price,
			IsActive:   true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := uow.PackageRepository().CreatePrice(ctx, price); err != nil {
			return nil, apperror.NewInternal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.CreatePackageResponse{Id: pkg.Id}, nil
}

func (s *packageService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pkg, err := findOwnedPackage(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	pkg.UpdatedAt = time.Now()

	if err := uow.PackageRepository().Update(ctx, pkg); err != nil {
		return nil, apperror.NewInternal(err)
	}

	res := packageResponseOf(pkg)
	return &res, nil
}

func (s *packageService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pkg, err := findOwnedPackage(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	// Any tier still backing an active subscription blocks the delete.
	for _, price := range pkg.Prices {
		count, err := uow.SubscriptionRepository().CountActiveByPrice(ctx, price.Id)
		if err != nil {
			return apperror.NewInternal(err)
		}
		if count > 0 {
			return apperror.NewConflict("package has active subscriptions")
		}
	}

	if err := uow.PackageRepository().Delete(ctx, pkg.Id); err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}

func (s *packageService) CreatePrice(ctx context.Context, userId uuid.UUID, req *dto.CreatePackagePriceRequest) (*dto.PackagePriceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pkg, err := findOwnedPackage(ctx, uow, userId, req.PackageId)
	if err != nil {
		return nil, err
	}

	for _, existing := range pkg.Prices {
		if existing.Recurrence == req.Recurrence && existing.IsActive {
			return nil, apperror.NewConflict("price tier for this recurrence already exists")
		}
	}

	price := &entity.PackagePrice{
		Id:         uuid.New(),
		PackageId:  pkg.Id,
		Recurrence: req.Recurrence,
		Price:      req.Price,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := uow.PackageRepository().CreatePrice(ctx, price); err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.PackagePriceResponse{
		Id:         price.Id,
		Recurrence: price.Recurrence,
		Price:      price.Price,
		IsActive:   price.IsActive,
	}, nil
}

func (s *packageService) UpdatePrice(ctx context.Context, userId uuid.UUID, req *dto.UpdatePackagePriceRequest) (*dto.PackagePriceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedPackage(ctx, uow, userId, req.PackageId); err != nil {
		return nil, err
	}

	price, err := uow.PackageRepository().FindOnePrice(ctx, specification.ByID{ID: req.PriceId})
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if price == nil || price.PackageId != req.PackageId {
		return nil, apperror.NewNotFound("price tier not found")
	}

	// Existing subscriptions keep their copied basePrice; only new ones see
	// the corrected value.
	price.Price = req.Price
	if req.Recurrence != nil {
		price.Recurrence = *req.Recurrence
	}
	if req.IsActive != nil {
		price.IsActive = *req.IsActive
	}
	price.UpdatedAt = time.Now()
	price.Package = nil

	if err := uow.PackageRepository().UpdatePrice(ctx, price); err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.PackagePriceResponse{
		Id:         price.Id,
		Recurrence: price.Recurrence,
		Price:      price.Price,
		IsActive:   price.IsActive,
	}, nil
}

func (s *packageService) DeletePrice(ctx context.Context, userId, packageId, priceId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedPackage(ctx, uow, userId, packageId); err != nil {
		return err
	}

	price, err := uow.PackageRepository().FindOnePrice(ctx, specification.ByID{ID: priceId})
	if err != nil {
		return apperror.NewInternal(err)
	}
	if price == nil || price.PackageId != packageId {
		return apperror.NewNotFound("price tier not found")
	}

	count, err := uow.SubscriptionRepository().CountActiveByPrice(ctx, priceId)
	if err != nil {
		return apperror.NewInternal(err)
	}
	if count > 0 {
		return apperror.NewConflict("price tier has active subscriptions")
	}

	if err := uow.PackageRepository().DeletePrice(ctx, priceId); err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}

func (s *packageService) ListPrices(ctx context.Context, userId uuid.UUID) ([]dto.CatalogPriceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	packages, err := uow.PackageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	catalog := make([]dto.CatalogPriceResponse, 0)
	for _, pkg := range packages {
		for _, price := range pkg.Prices {
			if !price.IsActive {
				continue
			}
			catalog = append(catalog, dto.CatalogPriceResponse{
				Id:          price.Id,
				PackageId:   pkg.Id,
				PackageName: pkg.Name,
				Recurrence:  price.Recurrence,
				Price:       price.Price,
			})
		}
	}
	return catalog, nil
}
