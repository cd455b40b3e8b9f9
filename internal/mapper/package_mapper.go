package mapper

import (
	"petgroom-be/internal/entity"
	"petgroom-be/internal/model"
)

type PackageMapper struct{}

func NewPackageMapper() *PackageMapper {
	return &PackageMapper{}
}

func (m *PackageMapper) ToEntity(p *model.Package) *entity.Package {
	if p == nil {
		return nil
	}
	e := &entity.Package{
		Id:          p.Id,
		UserId:      p.UserId,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, price := range p.Prices {
		e.Prices = append(e.Prices, m.PriceToEntity(price))
	}
	return e
}

func (m *PackageMapper) ToModel(p *entity.Package) *model.Package {
	if p == nil {
		return nil
	}
	return &model.Package{
		Id:          p.Id,
		UserId:      p.UserId,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PackageMapper) PriceToEntity(p *model.PackagePrice) *entity.PackagePrice {
	if p == nil {
		return nil
	}
	e := &entity.PackagePrice{
		Id:         p.Id,
		PackageId:  p.PackageId,
		Recurrence: p.Recurrence,
		Price:      p.Price,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Package != nil {
		e.Package = m.ToEntity(p.Package)
	}
	return e
}

func (m *PackageMapper) PriceToModel(p *entity.PackagePrice) *model.PackagePrice {
	if p == nil {
		return nil
	}
	return &model.PackagePrice{
		Id:         p.Id,
		PackageId:  p.PackageId,
		Recurrence: p.Recurrence,
		Price:      p.Price,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
