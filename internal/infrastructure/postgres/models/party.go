package models

import "time"

type PartyModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Role         string `gorm:"not null;index:idx_party_role"`
	DisplayName  string
	ReferralCode string `gorm:"uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type BondingModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	AffiliateID    string `gorm:"type:uuid;not null;index:idx_bonding_pair"`
	ProviderID     string `gorm:"type:uuid;not null;index:idx_bonding_pair"`
	CommissionRate int64
	Active         bool `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
