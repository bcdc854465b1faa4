package models

import "time"

type ReferralEdgeModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	ReferredID string `gorm:"type:uuid;not null;index:idx_edge_referred"`
	ReferrerID string `gorm:"type:uuid;not null;index:idx_edge_referrer"`
	Status     string `gorm:"not null;index:idx_edge_status"`
	CreatedAt  time.Time
}
