package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/mappers"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/models"
)

type DefaultReferralRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{DB: db}
}

func (r *DefaultReferralRepository) CreateEdge(edge *domain.ReferralEdge) error {
	if edge.ID == "" {
		edge.ID = uuid.New().String()
	}
	model := mappers.ToGORMEdge(edge)
	return r.DB.Create(model).Error
}

func (r *DefaultReferralRepository) GetReferrerEdge(referredID string) (*domain.ReferralEdge, error) {
	var model models.ReferralEdgeModel
	if err := r.DB.
		Where("referred_id = ? AND status IN ?", referredID,
			[]string{string(domain.ReferralStatusActive), string(domain.ReferralStatusCompleted)}).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoReferrer
		}
		return nil, err
	}
	return mappers.ToDomainEdge(&model), nil
}
