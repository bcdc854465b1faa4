package mappers

import (
	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:                   model.ID,
		ClientID:             model.ClientID,
		ProviderID:           model.ProviderID,
		ProcessingFee:        domain.Money(model.ProcessingFee),
		PlatformRetentionPct: model.PlatformRetentionPct,
		CompletedAt:          model.CompletedAt,
		RevenueCalculated:    model.RevenueCalculated,
		PlatformRevenue:      domain.Money(model.PlatformRevenue),
		ProviderRevenue:      domain.Money(model.ProviderRevenue),
		TotalCommissionsPaid: domain.Money(model.TotalCommissionsPaid),
		NetRevenue:           domain.Money(model.NetRevenue),
		ProfitMarginPercent:  model.ProfitMarginPercent,
		ChainPartial:         model.ChainPartial,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func ToGORMTransaction(txn *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:                   txn.ID,
		ClientID:             txn.ClientID,
		ProviderID:           txn.ProviderID,
		ProcessingFee:        int64(txn.ProcessingFee),
		PlatformRetentionPct: txn.PlatformRetentionPct,
		CompletedAt:          txn.CompletedAt,
		RevenueCalculated:    txn.RevenueCalculated,
		PlatformRevenue:      int64(txn.PlatformRevenue),
		ProviderRevenue:      int64(txn.ProviderRevenue),
		TotalCommissionsPaid: int64(txn.TotalCommissionsPaid),
		NetRevenue:           int64(txn.NetRevenue),
		ProfitMarginPercent:  txn.ProfitMarginPercent,
		ChainPartial:         txn.ChainPartial,
		CreatedAt:            txn.CreatedAt,
		UpdatedAt:            txn.UpdatedAt,
	}
}
