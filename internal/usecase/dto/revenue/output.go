package revenuedto

import "github.com/filari/revenue-service/internal/domain"

// BreakdownOutput is the result of a persisted breakdown computation,
// including the resolved chain for audit display.
type BreakdownOutput struct {
	TransactionID string                  `json:"transaction_id"`
	Breakdown     domain.RevenueBreakdown `json:"breakdown"`
	Tiers         []domain.CommissionTier `json:"tiers"`
	Termination   string                  `json:"chain_termination"`
}

type RateOutput struct {
	ReferrerID string       `json:"referrer_id"`
	ProviderID string       `json:"provider_id,omitempty"`
	Rate       domain.Money `json:"rate"`
}
