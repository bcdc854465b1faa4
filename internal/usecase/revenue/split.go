package revenue

import "github.com/filari/revenue-service/internal/domain"

// CalculateSplit divides a processing fee between the platform and the
// service provider. Percentages outside [0,100] are rejected, never clamped.
// The platform side is rounded half to even at the cent; the provider gets
// the remainder, so the two always sum back to the fee.
func (uc *DefaultRevenueUsecase) CalculateSplit(fee domain.Money, platformPct float64) (*domain.RevenueSplit, error) {
	if platformPct < 0 || platformPct > 100 {
		return nil, domain.ErrInvalidPercentage
	}

	platformRevenue := domain.PercentOf(fee, platformPct)

	return &domain.RevenueSplit{
		PlatformRevenue: platformRevenue,
		ProviderRevenue: fee - platformRevenue,
		PlatformPercent: platformPct,
		ProviderPercent: 100 - platformPct,
	}, nil
}
