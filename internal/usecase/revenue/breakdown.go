package revenue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/infrastructure/logger"
	revenuedto "github.com/filari/revenue-service/internal/usecase/dto/revenue"
)

// AssembleBreakdown is the pure assembly step: split the fee, price the
// chain at its current state, derive net revenue and margin. It has no
// persistence side effect; the once-only guarantee lives in
// ComputeTransactionRevenue. NetRevenue is not clamped and goes negative
// when commissions exceed the platform's share.
func (uc *DefaultRevenueUsecase) AssembleBreakdown(input *revenuedto.AssembleBreakdownInput) (*domain.RevenueBreakdown, *domain.ChainResult, error) {
	platformPct := domain.DefaultPlatformRetentionPct
	if input.PlatformPercent != nil {
		platformPct = *input.PlatformPercent
	}

	split, err := uc.CalculateSplit(input.ProcessingFee, platformPct)
	if err != nil {
		return nil, nil, err
	}

	chain := uc.BuildCommissionChain(input.ClientID, input.ProviderID)

	netRevenue := split.PlatformRevenue - chain.TotalCommissions
	profitMargin := 0.0
	if split.PlatformRevenue > 0 {
		profitMargin = float64(netRevenue) / float64(split.PlatformRevenue) * 100
	}

	return &domain.RevenueBreakdown{
		ProcessingFee:       input.ProcessingFee,
		PlatformRevenue:     split.PlatformRevenue,
		ProviderRevenue:     split.ProviderRevenue,
		TotalCommissions:    chain.TotalCommissions,
		NetRevenue:          netRevenue,
		ProfitMarginPercent: profitMargin,
		PlatformPercent:     platformPct,
		ChainPartial:        chain.Partial(),
	}, chain, nil
}

// ComputeTransactionRevenue loads the transaction, assembles its breakdown
// against the chain as it stands now, and persists it through a single
// conditional update. A transaction already priced returns
// domain.ErrRevenueAlreadyCalculated.
func (uc *DefaultRevenueUsecase) ComputeTransactionRevenue(transactionID string) (*revenuedto.BreakdownOutput, error) {
	start := time.Now()

	txn, err := uc.TransactionRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, fmt.Errorf("load transaction %s: %w", transactionID, err)
	}

	breakdown, chain, err := uc.AssembleBreakdown(&revenuedto.AssembleBreakdownInput{
		ProcessingFee:   txn.ProcessingFee,
		ClientID:        txn.ClientID,
		ProviderID:      txn.ProviderID,
		PlatformPercent: &txn.PlatformRetentionPct,
	})
	if err != nil {
		uc.recordFailure(txn, "assemble", err)
		return nil, fmt.Errorf("assemble breakdown for %s: %w", transactionID, err)
	}

	if err := uc.TransactionRepo.ApplyBreakdown(transactionID, breakdown); err != nil {
		if errors.Is(err, domain.ErrRevenueAlreadyCalculated) {
			return nil, err
		}
		uc.recordFailure(txn, "persist", err)
		return nil, fmt.Errorf("persist breakdown for %s: %w", transactionID, err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordBreakdownComputed(txn.ProviderID, breakdown, len(chain.Tiers), time.Since(start).Seconds())
	}

	if uc.EventLog != nil {
		if err := uc.EventLog.LogBreakdownComputed(context.Background(), logger.BreakdownComputedEvent{
			TransactionID:    transactionID,
			ClientID:         txn.ClientID,
			ProviderID:       txn.ProviderID,
			PlatformRevenue:  int64(breakdown.PlatformRevenue),
			ProviderRevenue:  int64(breakdown.ProviderRevenue),
			TotalCommissions: int64(breakdown.TotalCommissions),
			NetRevenue:       int64(breakdown.NetRevenue),
			ChainPartial:     breakdown.ChainPartial,
			Timestamp:        time.Now(),
		}); err != nil {
			slog.Warn("failed to write breakdown audit event", "transaction_id", transactionID, "error", err.Error())
		}
	}

	if uc.Publisher != nil {
		go func(event domain.BreakdownEvent) {
			if err := uc.Publisher.PublishBreakdown(event); err != nil {
				slog.Error("failed to publish breakdown event", "transaction_id", event.TransactionID, "error", err.Error())
			}
		}(domain.BreakdownEvent{
			TransactionID:    transactionID,
			ClientID:         txn.ClientID,
			ProviderID:       txn.ProviderID,
			PlatformRevenue:  int64(breakdown.PlatformRevenue),
			ProviderRevenue:  int64(breakdown.ProviderRevenue),
			TotalCommissions: int64(breakdown.TotalCommissions),
			NetRevenue:       int64(breakdown.NetRevenue),
			ChainPartial:     breakdown.ChainPartial,
		})
	}

	return &revenuedto.BreakdownOutput{
		TransactionID: transactionID,
		Breakdown:     *breakdown,
		Tiers:         chain.Tiers,
		Termination:   string(chain.Termination.Reason),
	}, nil
}

func (uc *DefaultRevenueUsecase) recordFailure(txn *domain.Transaction, stage string, cause error) {
	if uc.Metrics != nil {
		uc.Metrics.RecordBreakdownFailed(txn.ProviderID, stage)
	}
	if uc.EventLog != nil {
		if err := uc.EventLog.LogBreakdownFailed(context.Background(), logger.BreakdownFailedEvent{
			TransactionID: txn.ID,
			Reason:        fmt.Sprintf("%s: %v", stage, cause),
			Timestamp:     time.Now(),
		}); err != nil {
			slog.Warn("failed to write breakdown failure event", "transaction_id", txn.ID, "error", err.Error())
		}
	}
}
