package domain

import "time"

type Role string

const (
	RoleClient    Role = "CLIENT"
	RoleAffiliate Role = "AFFILIATE"
	RoleReferrer  Role = "REFERRER"
	RoleProvider  Role = "PROVIDER"
	RoleAdmin     Role = "ADMIN"
)

// DefaultCommissionRate returns the platform-default referral rate for a
// role, in cents. The switch is exhaustive over the closed role set; adding
// a role without pricing it here keeps it at zero.
func (r Role) DefaultCommissionRate() Money {
	switch r {
	case RoleAffiliate:
		return 5000
	case RoleClient:
		return 5000
	case RoleReferrer:
		return 5000
	case RoleProvider:
		return 0
	case RoleAdmin:
		return 0
	}
	return 0
}

type Party struct {
	ID           string
	Role         Role
	DisplayName  string
	ReferralCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Bonding is a negotiated, provider-specific override of an affiliate's
// default commission rate. CommissionRate of zero means the bonding exists
// but carries no override.
type Bonding struct {
	ID             string
	AffiliateID    string
	ProviderID     string
	CommissionRate Money
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PartyRepository interface {
	CreateParty(party *Party) error
	GetPartyByID(partyID string) (*Party, error)
	CreateBonding(bonding *Bonding) error
	GetActiveBonding(affiliateID, providerID string) (*Bonding, error)
}
