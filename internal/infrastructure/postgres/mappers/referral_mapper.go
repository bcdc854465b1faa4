package mappers

import (
	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/infrastructure/postgres/models"
)

func ToDomainEdge(model *models.ReferralEdgeModel) *domain.ReferralEdge {
	return &domain.ReferralEdge{
		ID:         model.ID,
		ReferredID: model.ReferredID,
		ReferrerID: model.ReferrerID,
		Status:     domain.ReferralStatus(model.Status),
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMEdge(edge *domain.ReferralEdge) *models.ReferralEdgeModel {
	return &models.ReferralEdgeModel{
		ID:         edge.ID,
		ReferredID: edge.ReferredID,
		ReferrerID: edge.ReferrerID,
		Status:     string(edge.Status),
		CreatedAt:  edge.CreatedAt,
	}
}
