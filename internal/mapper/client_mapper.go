package mapper

import (
	"petgroom-be/internal/entity"
	"petgroom-be/internal/model"
)

type ClientMapper struct {
	subscriptionMapper *SubscriptionMapper
}

func NewClientMapper() *ClientMapper {
	return &ClientMapper{
		subscriptionMapper: NewSubscriptionMapper(),
	}
}

func (m *ClientMapper) ToEntity(c *model.Client) *entity.Client {
	if c == nil {
		return nil
	}
	e := &entity.Client{
		Id:        c.Id,
		UserId:    c.UserId,
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
		e.Pets = append(e.Pets, m.PetToEntity(p))
	}
	for _, s := range c.Subscriptions {
		e.Subscriptions = append(e.Subscriptions, m.subscriptionMapper.ToEntity(s))
	}
	return e
}

func (m *ClientMapper) ToModel(c *entity.Client) *model.Client {
	if c == nil {
		return nil
	}
	return &model.Client{
		Id:        c.Id,
		UserId:    c.UserId,
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
}

func (m *ClientMapper) PetToEntity(p *model.Pet) *entity.Pet {
	if p == nil {
		return nil
	}
	var size *entity.PetSize
	if p.Size != nil {
		s := entity.PetSize(*p.Size)
		size = &s
	}
	return &entity.Pet{
		Id:        p.Id,
		ClientId:  p.ClientId,
		Name:      p.Name,
		Breed:     p.Breed,
		Size:      size,
		Weight:    p.Weight,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ClientMapper) PetToModel(p *entity.Pet) *model.Pet {
	if p == nil {
		return nil
	}
	var size *string
	if p.Size != nil {
		s := string(*p.Size)
		size = &s
	}
	return &model.Pet{
		Id:        p.Id,
		ClientId:  p.ClientId,
		Name:      p.Name,
		Breed:     p.Breed,
		Size:      size,
		Weight:    p.Weight,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
