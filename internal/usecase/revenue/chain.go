package revenue

import (
	"errors"
	"log/slog"

	"github.com/filari/revenue-service/internal/domain"
)

// maxChainDepth caps traversal at three tiers. The hard bound also limits
// the blast radius of cyclic or malformed referral data: a genuine cycle is
// truncated, not followed.
const maxChainDepth = 3

// tierDecayDen holds the denominator of the decay ratio per tier:
// 1/1, 1/2, 1/4.
var tierDecayDen = [maxChainDepth + 1]int64{0, 1, 2, 4}

// BuildCommissionChain walks referral edges upward from the paying client,
// pricing each referrer through ResolveRate with tier decay applied. A store
// error mid-traversal terminates the walk and returns the tiers accumulated
// so far; the termination reason tells callers which case they got.
func (uc *DefaultRevenueUsecase) BuildCommissionChain(clientID, providerID string) *domain.ChainResult {
	result := &domain.ChainResult{
		Tiers: []domain.CommissionTier{},
		Termination: domain.ChainTermination{
			Tier:   maxChainDepth,
			Reason: domain.TerminationDepthCap,
		},
	}

	current := clientID
	for tier := 1; tier <= maxChainDepth; tier++ {
		edge, err := uc.ReferralRepo.GetReferrerEdge(current)
		if err != nil {
			if errors.Is(err, domain.ErrNoReferrer) {
				result.Termination = domain.ChainTermination{Tier: tier, Reason: domain.TerminationNoReferrer}
			} else {
				slog.Error("referral edge lookup failed, returning partial chain",
					"referred_id", current, "tier", tier, "error", err.Error())
				result.Termination = domain.ChainTermination{Tier: tier, Reason: domain.TerminationLookupFailed, Err: err}
			}
			return result
		}

		role, baseRate, err := uc.resolveReferrer(edge.ReferrerID, providerID)
		if err != nil {
			slog.Error("rate resolution failed, returning partial chain",
				"referrer_id", edge.ReferrerID, "tier", tier, "error", err.Error())
			result.Termination = domain.ChainTermination{Tier: tier, Reason: domain.TerminationLookupFailed, Err: err}
			return result
		}

		decayed := baseRate.MulRatio(1, tierDecayDen[tier])
		result.Tiers = append(result.Tiers, domain.CommissionTier{
			PartyID:       edge.ReferrerID,
			Role:          role,
			Tier:          tier,
			BaseRate:      baseRate,
			DecayedAmount: decayed,
		})
		result.TotalCommissions += decayed

		current = edge.ReferrerID
	}

	return result
}
