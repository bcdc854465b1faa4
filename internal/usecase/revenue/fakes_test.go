package revenue_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/filari/revenue-service/internal/domain"
)

type fakePartyRepo struct {
	parties    map[string]*domain.Party
	bondings   map[string]*domain.Bonding
	partyErr   error
	bondingErr error
}

func newFakePartyRepo() *fakePartyRepo {
	return &fakePartyRepo{
		parties:  map[string]*domain.Party{},
		bondings: map[string]*domain.Bonding{},
	}
}

func (r *fakePartyRepo) addParty(id string, role domain.Role) {
	r.parties[id] = &domain.Party{ID: id, Role: role}
}

func (r *fakePartyRepo) addBonding(affiliateID, providerID string, rate domain.Money) {
	r.bondings[affiliateID+"|"+providerID] = &domain.Bonding{
		AffiliateID:    affiliateID,
		ProviderID:     providerID,
		CommissionRate: rate,
		Active:         true,
	}
}

func (r *fakePartyRepo) CreateParty(party *domain.Party) error {
	if party.ID == "" {
		party.ID = uuid.New().String()
	}
	r.parties[party.ID] = party
	return nil
}

func (r *fakePartyRepo) GetPartyByID(partyID string) (*domain.Party, error) {
	if r.partyErr != nil {
		return nil, r.partyErr
	}
	party, ok := r.parties[partyID]
	if !ok {
		return nil, domain.ErrPartyNotFound
	}
	return party, nil
}

func (r *fakePartyRepo) CreateBonding(bonding *domain.Bonding) error {
	r.bondings[bonding.AffiliateID+"|"+bonding.ProviderID] = bonding
	return nil
}

func (r *fakePartyRepo) GetActiveBonding(affiliateID, providerID string) (*domain.Bonding, error) {
	if r.bondingErr != nil {
		return nil, r.bondingErr
	}
	bonding, ok := r.bondings[affiliateID+"|"+providerID]
	if !ok {
		return nil, domain.ErrBondingNotFound
	}
	return bonding, nil
}

type fakeReferralRepo struct {
	edges   map[string]*domain.ReferralEdge
	edgeErr map[string]error
}

func newFakeReferralRepo() *fakeReferralRepo {
	return &fakeReferralRepo{
		edges:   map[string]*domain.ReferralEdge{},
		edgeErr: map[string]error{},
	}
}

func (r *fakeReferralRepo) link(referredID, referrerID string) {
	r.edges[referredID] = &domain.ReferralEdge{
		ReferredID: referredID,
		ReferrerID: referrerID,
		Status:     domain.ReferralStatusActive,
	}
}

func (r *fakeReferralRepo) CreateEdge(edge *domain.ReferralEdge) error {
	r.edges[edge.ReferredID] = edge
	return nil
}

func (r *fakeReferralRepo) GetReferrerEdge(referredID string) (*domain.ReferralEdge, error) {
	if err, ok := r.edgeErr[referredID]; ok {
		return nil, err
	}
	edge, ok := r.edges[referredID]
	if !ok {
		return nil, domain.ErrNoReferrer
	}
	return edge, nil
}

type fakeTransactionRepo struct {
	txns        map[string]*domain.Transaction
	totals      *domain.RevenueTotals
	totalsErr   error
	pipeline    int64
	pipelineErr error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txns: map[string]*domain.Transaction{}}
}

func (r *fakeTransactionRepo) CreateTransaction(txn *domain.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	r.txns[txn.ID] = txn
	return nil
}

func (r *fakeTransactionRepo) GetTransactionByID(txnID string) (*domain.Transaction, error) {
	txn, ok := r.txns[txnID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return txn, nil
}

func (r *fakeTransactionRepo) ApplyBreakdown(txnID string, breakdown *domain.RevenueBreakdown) error {
	txn, ok := r.txns[txnID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if txn.RevenueCalculated {
		return domain.ErrRevenueAlreadyCalculated
	}
	txn.RevenueCalculated = true
	txn.PlatformRevenue = breakdown.PlatformRevenue
	txn.ProviderRevenue = breakdown.ProviderRevenue
	txn.TotalCommissionsPaid = breakdown.TotalCommissions
	txn.NetRevenue = breakdown.NetRevenue
	txn.ProfitMarginPercent = breakdown.ProfitMarginPercent
	txn.ChainPartial = breakdown.ChainPartial
	txn.UpdatedAt = time.Now()
	return nil
}

func (r *fakeTransactionRepo) GetRevenueTotals(from, to time.Time) (*domain.RevenueTotals, error) {
	if r.totalsErr != nil {
		return nil, r.totalsErr
	}
	if r.totals == nil {
		return &domain.RevenueTotals{}, nil
	}
	return r.totals, nil
}

func (r *fakeTransactionRepo) CountPipeline() (int64, error) {
	if r.pipelineErr != nil {
		return 0, r.pipelineErr
	}
	return r.pipeline, nil
}
