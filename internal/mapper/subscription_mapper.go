package mapper

import (
	"petgroom-be/internal/entity"
	"petgroom-be/internal/model"
)

type SubscriptionMapper struct {
	packageMapper *PackageMapper
}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{
		packageMapper: NewPackageMapper(),
	}
}

func (m *SubscriptionMapper) ToEntity(s *model.ClientSubscription) *entity.ClientSubscription {
	if s == nil {
		return nil
	}
	reason := ""
	if s.AdjustmentReason != nil {
		reason = *s.AdjustmentReason
	}
	e := &entity.ClientSubscription{
		Id:                   s.Id,
		ClientId:             s.ClientId,
		PetId:                s.PetId,
		PackagePriceId:       s.PackagePriceId,
		PickupDayOfWeek:      s.PickupDayOfWeek,
		PickupTime:           s.PickupTime,
		StartDate:            s.StartDate,
		NextPickupDate:       s.NextPickupDate,
		EndDate:              s.EndDate,
		BasePrice:            s.BasePrice,
		FinalPrice:           s.FinalPrice,
		AdjustmentValue:      s.AdjustmentValue,
		AdjustmentPercentage: s.AdjustmentPercentage,
		AdjustmentReason:     reason,
		IsActive:             s.IsActive,
		Notes:                s.Notes,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
	if s.PackagePrice != nil {
		e.PackagePrice = m.packageMapper.PriceToEntity(s.PackagePrice)
	}
	return e
}

func (m *SubscriptionMapper) ToModel(s *entity.ClientSubscription) *model.ClientSubscription {
	if s == nil {
		return nil
	}
	var reason *string
	if s.AdjustmentReason != "" {
		r := s.AdjustmentReason
		reason = &r
	}
	return &model.ClientSubscription{
		Id:                   s.Id,
		ClientId:             s.ClientId,
		PetId:                s.PetId,
		PackagePriceId:       s.PackagePriceId,
		PickupDayOfWeek:      s.PickupDayOfWeek,
		PickupTime:           s.PickupTime,
		StartDate:            s.StartDate,
		NextPickupDate:       s.NextPickupDate,
		EndDate:              s.EndDate,
		BasePrice:            s.BasePrice,
		FinalPrice:           s.FinalPrice,
		AdjustmentValue:      s.AdjustmentValue,
		AdjustmentPercentage: s.AdjustmentPercentage,
		AdjustmentReason:     reason,
		IsActive:             s.IsActive,
		Notes:                s.Notes,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
