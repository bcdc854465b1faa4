package domain

import "time"

const DefaultPlatformRetentionPct = 30.0

// Transaction is the billable event created when a filing is marked
// complete. Breakdown fields are written exactly once; the once-only
// guarantee lives in TransactionRepository.ApplyBreakdown.
type Transaction struct {
	ID                   string
	ClientID             string
	ProviderID           string
	ProcessingFee        Money
	PlatformRetentionPct float64
	CompletedAt          time.Time

	RevenueCalculated    bool
	PlatformRevenue      Money
	ProviderRevenue      Money
	TotalCommissionsPaid Money
	NetRevenue           Money
	ProfitMarginPercent  float64
	ChainPartial         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RevenueTotals are the raw sums over revenue-calculated transactions in a
// window, as returned by the store.
type RevenueTotals struct {
	TransactionCount     int64
	TotalProcessingFees  Money
	TotalPlatformRevenue Money
	TotalProviderRevenue Money
	TotalCommissionsPaid Money
}

type TransactionRepository interface {
	CreateTransaction(txn *Transaction) error
	GetTransactionByID(txnID string) (*Transaction, error)
	// ApplyBreakdown persists the breakdown fields and flips
	// revenue_calculated in a single conditional update. Returns
	// ErrRevenueAlreadyCalculated when the flag was already set.
	ApplyBreakdown(txnID string, breakdown *RevenueBreakdown) error
	// GetRevenueTotals sums breakdown fields over transactions completed in
	// [from, to) with revenue_calculated = true.
	GetRevenueTotals(from, to time.Time) (*RevenueTotals, error)
	// CountPipeline counts transactions whose revenue has not been
	// calculated yet.
	CountPipeline() (int64, error)
}
