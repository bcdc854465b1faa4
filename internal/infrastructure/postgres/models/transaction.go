package models

import "time"

type TransactionModel struct {
	ID                   string `gorm:"primaryKey;type:uuid"`
	ClientID             string `gorm:"type:uuid;not null;index"`
	ProviderID           string `gorm:"type:uuid;not null;index"`
	ProcessingFee        int64
	PlatformRetentionPct float64
	CompletedAt          time.Time `gorm:"index:idx_txn_completed_at"`

	RevenueCalculated    bool `gorm:"index:idx_txn_revenue_calculated"`
	PlatformRevenue      int64
	ProviderRevenue      int64
	TotalCommissionsPaid int64
	NetRevenue           int64
	ProfitMarginPercent  float64
	ChainPartial         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
