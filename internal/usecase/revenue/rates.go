package revenue

import (
	"errors"
	"log/slog"

	"github.com/filari/revenue-service/internal/domain"
)

// ResolveRate returns the commission rate a referrer is entitled to, in
// cents. providerID may be empty when the transaction context is unknown.
// A missing referrer resolves to zero with a warning instead of an error,
// so one bad node never blocks pricing the rest of a chain.
func (uc *DefaultRevenueUsecase) ResolveRate(referrerID, providerID string) (domain.Money, error) {
	_, rate, err := uc.resolveReferrer(referrerID, providerID)
	return rate, err
}

// resolveReferrer also reports the referrer's role for chain entries.
func (uc *DefaultRevenueUsecase) resolveReferrer(referrerID, providerID string) (domain.Role, domain.Money, error) {
	party, err := uc.PartyRepo.GetPartyByID(referrerID)
	if err != nil {
		if errors.Is(err, domain.ErrPartyNotFound) {
			slog.Warn("referrer not found, pricing at zero", "referrer_id", referrerID)
			return "", 0, nil
		}
		return "", 0, err
	}

	if party.Role == domain.RoleAffiliate && providerID != "" {
		bonding, err := uc.PartyRepo.GetActiveBonding(referrerID, providerID)
		switch {
		case err == nil:
			if bonding.CommissionRate > 0 {
				return party.Role, bonding.CommissionRate, nil
			}
		case errors.Is(err, domain.ErrBondingNotFound):
			// fall through to the role default
		default:
			return "", 0, err
		}
	}

	return party.Role, party.Role.DefaultCommissionRate(), nil
}
