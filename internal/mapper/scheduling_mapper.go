package mapper

import (
	"petgroom-be/internal/entity"
	"petgroom-be/internal/model"
)

type SchedulingMapper struct {
	clientMapper  *ClientMapper
	packageMapper *PackageMapper
}

func NewSchedulingMapper() *SchedulingMapper {
	return &SchedulingMapper{
		clientMapper:  NewClientMapper(),
		packageMapper: NewPackageMapper(),
	}
}

func (m *SchedulingMapper) ToEntity(s *model.Scheduling) *entity.Scheduling {
	if s == nil {
		return nil
	}
	reason := ""
	if s.AdjustmentReason != nil {
		reason = *s.AdjustmentReason
	}
	e := &entity.Scheduling{
		Id:                   s.Id,
		ClientId:             s.ClientId,
		PickupDate:           s.PickupDate,
		PickupTime:           s.PickupTime,
		Status:               entity.SchedulingStatus(s.Status),
		BasePrice:            s.BasePrice,
		FinalPrice:           s.FinalPrice,
		AdjustmentValue:      s.AdjustmentValue,
		AdjustmentPercentage: s.AdjustmentPercentage,
		AdjustmentReason:     reason,
		Notes:                s.Notes,
		StartedAt:            s.StartedAt,
		CompletedAt:          s.CompletedAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
	if s.Client != nil {
		e.Client = m.clientMapper.ToEntity(s.Client)
	}
	for _, sp := range s.Pets {
		e.Pets = append(e.Pets, m.PetToEntity(sp))
	}
	return e
}

func (m *SchedulingMapper) ToModel(s *entity.Scheduling) *model.Scheduling {
	if s == nil {
		return nil
	}
	var reason *string
	if s.AdjustmentReason != "" {
		r := s.AdjustmentReason
		reason = &r
	}
	return &model.Scheduling{
		Id:                   s.Id,
		ClientId:             s.ClientId,
		PickupDate:           s.PickupDate,
		PickupTime:           s.PickupTime,
		Status:               string(s.Status),
		BasePrice:            s.BasePrice,
		FinalPrice:           s.FinalPrice,
		AdjustmentValue:      s.AdjustmentValue,
		AdjustmentPercentage: s.AdjustmentPercentage,
		AdjustmentReason:     reason,
		Notes:                s.Notes,
		StartedAt:            s.StartedAt,
		CompletedAt:          s.CompletedAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *SchedulingMapper) PetToEntity(sp *model.SchedulingPet) *entity.SchedulingPet {
	if sp == nil {
		return nil
	}
	e := &entity.SchedulingPet{
		Id:             sp.Id,
		SchedulingId:   sp.SchedulingId,
		PetId:          sp.PetId,
		PackagePriceId: sp.PackagePriceId,
		CreatedAt:      sp.CreatedAt,
	}
	if sp.Scheduling != nil {
		e.Scheduling = m.ToEntity(sp.Scheduling)
	}
	if sp.Pet != nil {
		e.Pet = m.clientMapper.PetToEntity(sp.Pet)
	}
	if sp.PackagePrice != nil {
		e.PackagePrice = m.packageMapper.PriceToEntity(sp.PackagePrice)
	}
	return e
}

func (m *SchedulingMapper) PetToModel(sp *entity.SchedulingPet) *model.SchedulingPet {
	if sp == nil {
		return nil
	}
	return &model.SchedulingPet{
		Id:             sp.Id,
		SchedulingId:   sp.SchedulingId,
		PetId:          sp.PetId,
		PackagePriceId: sp.PackagePriceId,
		CreatedAt:      sp.CreatedAt,
	}
}
