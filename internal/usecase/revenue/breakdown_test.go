package revenue_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filari/revenue-service/internal/domain"
	revenuedto "github.com/filari/revenue-service/internal/usecase/dto/revenue"
)

func floatPtr(v float64) *float64 { return &v }

func TestAssembleBreakdown(t *testing.T) {
	partyRepo := newFakePartyRepo()
	partyRepo.addParty("ref-1", domain.RoleAffiliate)

	referralRepo := newFakeReferralRepo()
	referralRepo.link("client", "ref-1")

	uc := newUsecase(newFakeTransactionRepo(), partyRepo, referralRepo)

	breakdown, chain, err := uc.AssembleBreakdown(&revenuedto.AssembleBreakdownInput{
		ProcessingFee:   100000, // $1000
		ClientID:        "client",
		PlatformPercent: floatPtr(30),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Money(100000), breakdown.ProcessingFee)
	assert.Equal(t, domain.Money(30000), breakdown.PlatformRevenue)
	assert.Equal(t, domain.Money(70000), breakdown.ProviderRevenue)
	assert.Equal(t, domain.Money(5000), breakdown.TotalCommissions)
	assert.Equal(t, domain.Money(25000), breakdown.NetRevenue)
	assert.InDelta(t, 83.333, breakdown.ProfitMarginPercent, 0.001)
	assert.False(t, breakdown.ChainPartial)
	require.Len(t, chain.Tiers, 1)
}

func TestAssembleBreakdownDefaultPercentage(t *testing.T) {
	uc := newUsecase(newFakeTransactionRepo(), newFakePartyRepo(), newFakeReferralRepo())

	breakdown, _, err := uc.AssembleBreakdown(&revenuedto.AssembleBreakdownInput{
		ProcessingFee: 1000,
		ClientID:      "client",
	})
	require.NoError(t, err)
	assert.Equal(t, 30.0, breakdown.PlatformPercent)
	assert.Equal(t, domain.Money(300), breakdown.PlatformRevenue)
	assert.Equal(t, domain.Money(700), breakdown.ProviderRevenue)
}

func TestAssembleBreakdownDeterministic(t *testing.T) {
	partyRepo := newFakePartyRepo()
	partyRepo.addParty("ref-1", domain.RoleAffiliate)
	partyRepo.addParty("ref-2", domain.RoleClient)

	referralRepo := newFakeReferralRepo()
	referralRepo.link("client", "ref-1")
	referralRepo.link("ref-1", "ref-2")

	uc := newUsecase(newFakeTransactionRepo(), partyRepo, referralRepo)
	input := &revenuedto.AssembleBreakdownInput{
		ProcessingFee:   100000,
		ClientID:        "client",
		PlatformPercent: floatPtr(30),
	}

	first, _, err := uc.AssembleBreakdown(input)
	require.NoError(t, err)
	second, _, err := uc.AssembleBreakdown(input)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs and chain state must produce identical breakdowns")
}

func TestAssembleBreakdownNegativeNetRevenue(t *testing.T) {
	// fee $100 at 30% retains $30, but a single affiliate tier costs $50.
	partyRepo := newFakePartyRepo()
	partyRepo.addParty("ref-1", domain.RoleAffiliate)

	referralRepo := newFakeReferralRepo()
	referralRepo.link("client", "ref-1")

	uc := newUsecase(newFakeTransactionRepo(), partyRepo, referralRepo)

	breakdown, _, err := uc.AssembleBreakdown(&revenuedto.AssembleBreakdownInput{
		ProcessingFee:   10000,
		ClientID:        "client",
		PlatformPercent: floatPtr(30),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Money(-2000), breakdown.NetRevenue, "net revenue must not be clamped")
	assert.InDelta(t, -66.666, breakdown.ProfitMarginPercent, 0.001)
}

func TestAssembleBreakdownZeroPlatformRevenue(t *testing.T) {
	uc := newUsecase(newFakeTransactionRepo(), newFakePartyRepo(), newFakeReferralRepo())

	breakdown, _, err := uc.AssembleBreakdown(&revenuedto.AssembleBreakdownInput{
		ProcessingFee:   1000,
		ClientID:        "client",
		PlatformPercent: floatPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, breakdown.ProfitMarginPercent)
}

func TestAssembleBreakdownInvalidPercentage(t *testing.T) {
	uc := newUsecase(newFakeTransactionRepo(), newFakePartyRepo(), newFakeReferralRepo())

	_, _, err := uc.AssembleBreakdown(&revenuedto.AssembleBreakdownInput{
		ProcessingFee:   1000,
		ClientID:        "client",
		PlatformPercent: floatPtr(130),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPercentage)
}

func TestAssembleBreakdownPartialChain(t *testing.T) {
	partyRepo := newFakePartyRepo()
	partyRepo.addParty("ref-1", domain.RoleAffiliate)

	referralRepo := newFakeReferralRepo()
	referralRepo.link("client", "ref-1")
	referralRepo.edgeErr["ref-1"] = errors.New("connection reset")

	uc := newUsecase(newFakeTransactionRepo(), partyRepo, referralRepo)

	breakdown, chain, err := uc.AssembleBreakdown(&revenuedto.AssembleBreakdownInput{
		ProcessingFee:   100000,
		ClientID:        "client",
		PlatformPercent: floatPtr(30),
	})
	require.NoError(t, err, "a partial chain must not fail the breakdown")
	assert.True(t, breakdown.ChainPartial)
	assert.Equal(t, domain.Money(5000), breakdown.TotalCommissions)
	assert.Equal(t, domain.TerminationLookupFailed, chain.Termination.Reason)
}

func TestComputeTransactionRevenue(t *testing.T) {
	txnRepo := newFakeTransactionRepo()
	partyRepo := newFakePartyRepo()
	partyRepo.addParty("ref-1", domain.RoleAffiliate)

	referralRepo := newFakeReferralRepo()
	referralRepo.link("client", "ref-1")

	txn := &domain.Transaction{
		ID:                   "txn-1",
		ClientID:             "client",
		ProviderID:           "prov",
		ProcessingFee:        100000,
		PlatformRetentionPct: 30,
	}
	require.NoError(t, txnRepo.CreateTransaction(txn))

	uc := newUsecase(txnRepo, partyRepo, referralRepo)

	out, err := uc.ComputeTransactionRevenue("txn-1")
	require.NoError(t, err)

	assert.Equal(t, "txn-1", out.TransactionID)
	assert.Equal(t, domain.Money(30000), out.Breakdown.PlatformRevenue)
	assert.Equal(t, domain.Money(70000), out.Breakdown.ProviderRevenue)
	assert.Equal(t, domain.Money(5000), out.Breakdown.TotalCommissions)
	require.Len(t, out.Tiers, 1)

	stored, err := txnRepo.GetTransactionByID("txn-1")
	require.NoError(t, err)
	assert.True(t, stored.RevenueCalculated)
	assert.Equal(t, domain.Money(30000), stored.PlatformRevenue)
	assert.Equal(t, domain.Money(25000), stored.NetRevenue)
}

func TestComputeTransactionRevenueOnceOnly(t *testing.T) {
	txnRepo := newFakeTransactionRepo()
	require.NoError(t, txnRepo.CreateTransaction(&domain.Transaction{
		ID:                   "txn-1",
		ClientID:             "client",
		ProcessingFee:        1000,
		PlatformRetentionPct: 30,
	}))

	uc := newUsecase(txnRepo, newFakePartyRepo(), newFakeReferralRepo())

	_, err := uc.ComputeTransactionRevenue("txn-1")
	require.NoError(t, err)

	_, err = uc.ComputeTransactionRevenue("txn-1")
	assert.ErrorIs(t, err, domain.ErrRevenueAlreadyCalculated)
}

func TestComputeTransactionRevenueNotFound(t *testing.T) {
	uc := newUsecase(newFakeTransactionRepo(), newFakePartyRepo(), newFakeReferralRepo())

	_, err := uc.ComputeTransactionRevenue("missing")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestRegisterCompletedFiling(t *testing.T) {
	txnRepo := newFakeTransactionRepo()
	uc := newUsecase(txnRepo, newFakePartyRepo(), newFakeReferralRepo())

	txn, err := uc.RegisterCompletedFiling(&revenuedto.CreateTransactionInput{
		ClientID:      "client",
		ProviderID:    "prov",
		ProcessingFee: 100000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, domain.DefaultPlatformRetentionPct, txn.PlatformRetentionPct)
	assert.False(t, txn.RevenueCalculated)
	assert.False(t, txn.CompletedAt.IsZero())

	_, err = uc.RegisterCompletedFiling(&revenuedto.CreateTransactionInput{
		ClientID:             "client",
		ProviderID:           "prov",
		ProcessingFee:        100000,
		PlatformRetentionPct: 120,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPercentage)
}
