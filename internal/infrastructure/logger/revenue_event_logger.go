package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type BreakdownComputedEvent struct {
	ID               uint `gorm:"primaryKey"`
	TransactionID    string
	ClientID         string
	ProviderID       string
	PlatformRevenue  int64
	ProviderRevenue  int64
	TotalCommissions int64
	NetRevenue       int64
	ChainPartial     bool
	Timestamp        time.Time
}

type BreakdownFailedEvent struct {
	ID            uint `gorm:"primaryKey"`
	TransactionID string
	Reason        string
	Timestamp     time.Time
}

// RevenueEventLogger is the audit trail for breakdown computations.
type RevenueEventLogger interface {
	LogBreakdownComputed(ctx context.Context, event BreakdownComputedEvent) error
	LogBreakdownFailed(ctx context.Context, event BreakdownFailedEvent) error
}

type PGRevenueEventLogger struct {
	db *gorm.DB
}

func NewPGRevenueEventLogger(db *gorm.DB) *PGRevenueEventLogger {
	return &PGRevenueEventLogger{db: db}
}

func (l *PGRevenueEventLogger) LogBreakdownComputed(ctx context.Context, event BreakdownComputedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGRevenueEventLogger) LogBreakdownFailed(ctx context.Context, event BreakdownFailedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
