package revenue

import (
	"time"

	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/infrastructure/logger"
	"github.com/filari/revenue-service/internal/infrastructure/metrics"
	revenuedto "github.com/filari/revenue-service/internal/usecase/dto/revenue"
)

type RevenueUsecase interface {
	CalculateSplit(fee domain.Money, platformPct float64) (*domain.RevenueSplit, error)
	ResolveRate(referrerID, providerID string) (domain.Money, error)
	BuildCommissionChain(clientID, providerID string) *domain.ChainResult
	AssembleBreakdown(input *revenuedto.AssembleBreakdownInput) (*domain.RevenueBreakdown, *domain.ChainResult, error)
	ComputeTransactionRevenue(transactionID string) (*revenuedto.BreakdownOutput, error)
	RegisterCompletedFiling(input *revenuedto.CreateTransactionInput) (*domain.Transaction, error)

	GetStatistics(from, to time.Time) (*domain.RevenueStatistics, error)
	Forecast(months int) (*domain.ForecastResult, error)
}

type DefaultRevenueUsecase struct {
	TransactionRepo domain.TransactionRepository
	PartyRepo       domain.PartyRepository
	ReferralRepo    domain.ReferralRepository
	Publisher       domain.BreakdownPublisherPort
	EventLog        logger.RevenueEventLogger
	Metrics         *metrics.RevenueMetrics
}

func NewDefaultRevenueUsecase(
	transactionRepo domain.TransactionRepository,
	partyRepo domain.PartyRepository,
	referralRepo domain.ReferralRepository,
	publisher domain.BreakdownPublisherPort,
	eventLog logger.RevenueEventLogger,
	revenueMetrics *metrics.RevenueMetrics) *DefaultRevenueUsecase {

	return &DefaultRevenueUsecase{
		TransactionRepo: transactionRepo,
		PartyRepo:       partyRepo,
		ReferralRepo:    referralRepo,
		Publisher:       publisher,
		EventLog:        eventLog,
		Metrics:         revenueMetrics,
	}
}
