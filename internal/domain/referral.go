package domain

import "time"

type ReferralStatus string

const (
	ReferralStatusActive    ReferralStatus = "ACTIVE"
	ReferralStatusCompleted ReferralStatus = "COMPLETED"
	ReferralStatusInactive  ReferralStatus = "INACTIVE"
)

// ReferralEdge is a directed edge referred -> referrer. The transitive set
// of edges above a paying client forms the referral chain.
type ReferralEdge struct {
	ID         string
	ReferredID string
	ReferrerID string
	Status     ReferralStatus
	CreatedAt  time.Time
}

type ReferralRepository interface {
	CreateEdge(edge *ReferralEdge) error
	// GetReferrerEdge returns the newest active or completed edge whose
	// referred side is referredID, or ErrNoReferrer.
	GetReferrerEdge(referredID string) (*ReferralEdge, error)
}
