package referral

import (
	"github.com/filari/revenue-service/internal/domain"
)

// ReferralUsecase maintains the referral graph the revenue engine reads.
// Policy about who may refer whom is decided upstream; this layer only
// records the graph.
type ReferralUsecase interface {
	RegisterParty(party *domain.Party) error
	LinkReferral(referredID, referrerID string) error
	RegisterBonding(bonding *domain.Bonding) error
}

type DefaultReferralUsecase struct {
	PartyRepo    domain.PartyRepository
	ReferralRepo domain.ReferralRepository
}

func NewDefaultReferralUsecase(partyRepo domain.PartyRepository, referralRepo domain.ReferralRepository) *DefaultReferralUsecase {
	return &DefaultReferralUsecase{
		PartyRepo:    partyRepo,
		ReferralRepo: referralRepo,
	}
}

func (uc *DefaultReferralUsecase) RegisterParty(party *domain.Party) error {
	return uc.PartyRepo.CreateParty(party)
}

func (uc *DefaultReferralUsecase) LinkReferral(referredID, referrerID string) error {
	return uc.ReferralRepo.CreateEdge(&domain.ReferralEdge{
		ReferredID: referredID,
		ReferrerID: referrerID,
		Status:     domain.ReferralStatusActive,
	})
}

func (uc *DefaultReferralUsecase) RegisterBonding(bonding *domain.Bonding) error {
	return uc.PartyRepo.CreateBonding(bonding)
}
