package revenue

import (
	"fmt"
	"math"
	"time"

	"github.com/filari/revenue-service/internal/domain"
)

// GetStatistics summarizes persisted breakdowns completed in [from, to).
// An empty window is a valid answer and yields zeroed statistics; store
// errors propagate to the caller.
func (uc *DefaultRevenueUsecase) GetStatistics(from, to time.Time) (*domain.RevenueStatistics, error) {
	totals, err := uc.TransactionRepo.GetRevenueTotals(from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue totals: %w", err)
	}

	stats := &domain.RevenueStatistics{
		TransactionCount:     totals.TransactionCount,
		TotalProcessingFees:  totals.TotalProcessingFees,
		TotalPlatformRevenue: totals.TotalPlatformRevenue,
		TotalProviderRevenue: totals.TotalProviderRevenue,
		TotalCommissionsPaid: totals.TotalCommissionsPaid,
		NetRevenue:           totals.TotalPlatformRevenue - totals.TotalCommissionsPaid,
	}

	if totals.TransactionCount > 0 {
		stats.AvgProcessingFee = domain.Money(math.RoundToEven(
			float64(totals.TotalProcessingFees) / float64(totals.TransactionCount)))
	}
	if totals.TotalPlatformRevenue > 0 {
		stats.AvgProfitMargin = float64(stats.NetRevenue) / float64(totals.TotalPlatformRevenue) * 100
	}

	return stats, nil
}
