package revenue

import (
	"fmt"
	"time"

	"github.com/filari/revenue-service/internal/domain"
	revenuedto "github.com/filari/revenue-service/internal/usecase/dto/revenue"
)

// RegisterCompletedFiling records the billable transaction for a filing the
// moment it is marked complete. The breakdown itself is computed separately,
// either by the filing-event consumer or an explicit compute call.
func (uc *DefaultRevenueUsecase) RegisterCompletedFiling(input *revenuedto.CreateTransactionInput) (*domain.Transaction, error) {
	pct := input.PlatformRetentionPct
	if pct == 0 {
		pct = domain.DefaultPlatformRetentionPct
	}
	if pct < 0 || pct > 100 {
		return nil, domain.ErrInvalidPercentage
	}

	txn := &domain.Transaction{
		ClientID:             input.ClientID,
		ProviderID:           input.ProviderID,
		ProcessingFee:        input.ProcessingFee,
		PlatformRetentionPct: pct,
		CompletedAt:          time.Now(),
	}
	if err := uc.TransactionRepo.CreateTransaction(txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return txn, nil
}
