package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/mappers"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/models"
)

type DefaultPartyRepository struct {
	DB *gorm.DB
}

func NewDefaultPartyRepository(db *gorm.DB) *DefaultPartyRepository {
	return &DefaultPartyRepository{DB: db}
}

func (r *DefaultPartyRepository) CreateParty(party *domain.Party) error {
	if party.ID == "" {
		party.ID = uuid.New().String()
	}
	model := mappers.ToGORMParty(party)
	return r.DB.Create(model).Error
}

func (r *DefaultPartyRepository) GetPartyByID(partyID string) (*domain.Party, error) {
	var model models.PartyModel
	if err := r.DB.First(&model, "id = ?", partyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}
	return mappers.ToDomainParty(&model), nil
}

func (r *DefaultPartyRepository) CreateBonding(bonding *domain.Bonding) error {
	if bonding.ID == "" {
		bonding.ID = uuid.New().String()
	}
	model := mappers.ToGORMBonding(bonding)
	return r.DB.Create(model).Error
}

func (r *DefaultPartyRepository) GetActiveBonding(affiliateID, providerID string) (*domain.Bonding, error) {
	var model models.BondingModel
	if err := r.DB.
		Where("affiliate_id = ? AND provider_id = ? AND active = ?", affiliateID, providerID, true).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBondingNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBonding(&model), nil
}
