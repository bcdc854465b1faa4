package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/mappers"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/models"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(txn *domain.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	model := mappers.ToGORMTransaction(txn)
	return r.DB.Create(model).Error
}

func (r *DefaultTransactionRepository) GetTransactionByID(txnID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "id = ?", txnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&model), nil
}

// ApplyBreakdown writes the breakdown fields and flips revenue_calculated in
// one conditional UPDATE, so two concurrent completion events can never both
// persist a breakdown for the same transaction.
func (r *DefaultTransactionRepository) ApplyBreakdown(txnID string, breakdown *domain.RevenueBreakdown) error {
	res := r.DB.Model(&models.TransactionModel{}).
		Where("id = ? AND revenue_calculated = ?", txnID, false).
		Updates(map[string]interface{}{
			"platform_revenue":       int64(breakdown.PlatformRevenue),
			"provider_revenue":       int64(breakdown.ProviderRevenue),
			"total_commissions_paid": int64(breakdown.TotalCommissions),
			"net_revenue":            int64(breakdown.NetRevenue),
			"profit_margin_percent":  breakdown.ProfitMarginPercent,
			"chain_partial":          breakdown.ChainPartial,
			"revenue_calculated":     true,
			"updated_at":             time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.TransactionModel{}).Where("id = ?", txnID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrTransactionNotFound
		}
		return domain.ErrRevenueAlreadyCalculated
	}
	return nil
}

func (r *DefaultTransactionRepository) GetRevenueTotals(from, to time.Time) (*domain.RevenueTotals, error) {
	type totalsAgg struct {
		Count       int64
		Fees        int64
		Platform    int64
		Provider    int64
		Commissions int64
	}
	var agg totalsAgg
	if err := r.DB.Model(&models.TransactionModel{}).
		Where("revenue_calculated = ? AND completed_at >= ? AND completed_at < ?", true, from, to).
		Select(`COUNT(*) as count,
			COALESCE(SUM(processing_fee), 0) as fees,
			COALESCE(SUM(platform_revenue), 0) as platform,
			COALESCE(SUM(provider_revenue), 0) as provider,
			COALESCE(SUM(total_commissions_paid), 0) as commissions`).
		Scan(&agg).Error; err != nil {
		return nil, fmt.Errorf("revenue totals agg: %w", err)
	}

	return &domain.RevenueTotals{
		TransactionCount:     agg.Count,
		TotalProcessingFees:  domain.Money(agg.Fees),
		TotalPlatformRevenue: domain.Money(agg.Platform),
		TotalProviderRevenue: domain.Money(agg.Provider),
		TotalCommissionsPaid: domain.Money(agg.Commissions),
	}, nil
}

func (r *DefaultTransactionRepository) CountPipeline() (int64, error) {
	var count int64
	if err := r.DB.Model(&models.TransactionModel{}).
		Where("revenue_calculated = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
