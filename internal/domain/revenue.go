package domain

// RevenueSplit is the two-way division of a processing fee between the
// platform and the service provider.
type RevenueSplit struct {
	PlatformRevenue Money
	ProviderRevenue Money
	PlatformPercent float64
	ProviderPercent float64
}

// CommissionTier is one priced entry of the referral chain. Tier 1 is the
// direct referrer of the paying client.
type CommissionTier struct {
	PartyID       string
	Role          Role
	Tier          int
	BaseRate      Money
	DecayedAmount Money
}

type TerminationReason string

const (
	// TerminationDepthCap: traversal stopped at the maximum tier.
	TerminationDepthCap TerminationReason = "DEPTH_CAP"
	// TerminationNoReferrer: no further active or completed edge exists.
	TerminationNoReferrer TerminationReason = "NO_REFERRER"
	// TerminationLookupFailed: a store error aborted the traversal; the
	// accumulated tiers are a partial result.
	TerminationLookupFailed TerminationReason = "LOOKUP_FAILED"
)

type ChainTermination struct {
	Tier   int
	Reason TerminationReason
	Err    error
}

// ChainResult is the ordered referral chain (tier 1 first) plus a typed
// termination, so callers can tell "no referrer exists" from "lookup
// failed" without parsing logs.
type ChainResult struct {
	Tiers            []CommissionTier
	TotalCommissions Money
	Termination      ChainTermination
}

func (c *ChainResult) Partial() bool {
	return c.Termination.Reason == TerminationLookupFailed
}

// RevenueBreakdown is the immutable per-transaction record of where the
// processing fee went. NetRevenue may legitimately be negative when
// commissions exceed the platform's retained share; it is never clamped.
type RevenueBreakdown struct {
	ProcessingFee       Money
	PlatformRevenue     Money
	ProviderRevenue     Money
	TotalCommissions    Money
	NetRevenue          Money
	ProfitMarginPercent float64
	PlatformPercent     float64
	ChainPartial        bool
}

// RevenueStatistics summarizes persisted breakdowns over a date window.
// A window with no transactions yields all-zero statistics.
type RevenueStatistics struct {
	TransactionCount     int64
	TotalProcessingFees  Money
	TotalPlatformRevenue Money
	TotalProviderRevenue Money
	TotalCommissionsPaid Money
	NetRevenue           Money
	AvgProcessingFee     Money
	AvgProfitMargin      float64
}

type ForecastMonth struct {
	Month               int
	ExpectedReturns     float64
	ExpectedRevenue     Money
	ExpectedCommissions Money
	ExpectedNetRevenue  Money
}

type ForecastSummary struct {
	TotalExpectedReturns     float64
	TotalExpectedRevenue     Money
	TotalExpectedCommissions Money
	TotalExpectedNetRevenue  Money
}

type ForecastResult struct {
	Months  []ForecastMonth
	Summary ForecastSummary
}
