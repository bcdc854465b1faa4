package revenuedto

import "github.com/filari/revenue-service/internal/domain"

// AssembleBreakdownInput carries the inputs of a pure breakdown assembly.
// PlatformPercent nil means the platform default.
type AssembleBreakdownInput struct {
	ProcessingFee   domain.Money
	ClientID        string
	ProviderID      string
	PlatformPercent *float64
}

type CreateTransactionInput struct {
	ClientID             string
	ProviderID           string
	ProcessingFee        domain.Money
	PlatformRetentionPct float64
}
