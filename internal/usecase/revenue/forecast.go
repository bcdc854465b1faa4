package revenue

import (
	"fmt"
	"math"
	"time"

	"github.com/filari/revenue-service/internal/domain"
)

// trailingWindowMonths is the historical window the projection averages over.
const trailingWindowMonths = 3

// Forecast extrapolates near-future revenue from trailing per-transaction
// averages plus the current unpriced pipeline, which counts toward month 1
// only. This is a projection, not a guarantee; upstream query errors fail
// loudly.
func (uc *DefaultRevenueUsecase) Forecast(months int) (*domain.ForecastResult, error) {
	result := &domain.ForecastResult{Months: []domain.ForecastMonth{}}
	if months <= 0 {
		return result, nil
	}

	now := time.Now()
	stats, err := uc.GetStatistics(now.AddDate(0, -trailingWindowMonths, 0), now)
	if err != nil {
		return nil, fmt.Errorf("trailing statistics: %w", err)
	}

	pipeline, err := uc.TransactionRepo.CountPipeline()
	if err != nil {
		return nil, fmt.Errorf("pipeline count: %w", err)
	}

	avgReturnsPerMonth := float64(stats.TransactionCount) / trailingWindowMonths
	var avgRevenuePerTxn, avgCommissionPerTxn float64
	if stats.TransactionCount > 0 {
		avgRevenuePerTxn = float64(stats.TotalPlatformRevenue) / float64(stats.TransactionCount)
		avgCommissionPerTxn = float64(stats.TotalCommissionsPaid) / float64(stats.TransactionCount)
	}

	for month := 1; month <= months; month++ {
		expectedReturns := avgReturnsPerMonth
		if month == 1 {
			expectedReturns += float64(pipeline)
		}

		expectedRevenue := domain.Money(math.RoundToEven(expectedReturns * avgRevenuePerTxn))
		expectedCommissions := domain.Money(math.RoundToEven(expectedReturns * avgCommissionPerTxn))

		entry := domain.ForecastMonth{
			Month:               month,
			ExpectedReturns:     expectedReturns,
			ExpectedRevenue:     expectedRevenue,
			ExpectedCommissions: expectedCommissions,
			ExpectedNetRevenue:  expectedRevenue - expectedCommissions,
		}
		result.Months = append(result.Months, entry)

		result.Summary.TotalExpectedReturns += entry.ExpectedReturns
		result.Summary.TotalExpectedRevenue += entry.ExpectedRevenue
		result.Summary.TotalExpectedCommissions += entry.ExpectedCommissions
		result.Summary.TotalExpectedNetRevenue += entry.ExpectedNetRevenue
	}

	return result, nil
}
