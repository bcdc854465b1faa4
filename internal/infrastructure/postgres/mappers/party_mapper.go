package mappers

import (
	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/models"
)

func ToDomainParty(model *models.PartyModel) *domain.Party {
	return &domain.Party{
		ID:           model.ID,
		Role:         domain.Role(model.Role),
		DisplayName:  model.DisplayName,
		ReferralCode: model.ReferralCode,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMParty(party *domain.Party) *models.PartyModel {
	return &models.PartyModel{
		ID:           party.ID,
		Role:         string(party.Role),
		DisplayName:  party.DisplayName,
		ReferralCode: party.ReferralCode,
		CreatedAt:    party.CreatedAt,
		UpdatedAt:    party.UpdatedAt,
	}
}

func ToDomainBonding(model *models.BondingModel) *domain.Bonding {
	return &domain.Bonding{
		ID:             model.ID,
		AffiliateID:    model.AffiliateID,
		ProviderID:     model.ProviderID,
		CommissionRate: domain.Money(model.CommissionRate),
		Active:         model.Active,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMBonding(bonding *domain.Bonding) *models.BondingModel {
	return &models.BondingModel{
		ID:             bonding.ID,
		AffiliateID:    bonding.AffiliateID,
		ProviderID:     bonding.ProviderID,
		CommissionRate: int64(bonding.CommissionRate),
		Active:         bonding.Active,
		CreatedAt:      bonding.CreatedAt,
		UpdatedAt:      bonding.UpdatedAt,
	}
}
