package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/usecase/referral"
)

// ReferralHandler maintains the referral graph: parties, edges, bondings.
type ReferralHandler struct {
	uc referral.ReferralUsecase
}

func NewReferralHandler(uc referral.ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{uc: uc}
}

func (h *ReferralHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/referrals")
	g.POST("/parties", h.RegisterParty)
	g.POST("/links", h.LinkReferral)
	g.POST("/bondings", h.RegisterBonding)
}

type registerPartyRequest struct {
	Role         string `json:"role"`
	DisplayName  string `json:"displayName"`
	ReferralCode string `json:"referralCode"`
}

func (h *ReferralHandler) RegisterParty(c echo.Context) error {
	var req registerPartyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	party := &domain.Party{
		Role:         domain.Role(req.Role),
		DisplayName:  req.DisplayName,
		ReferralCode: req.ReferralCode,
	}
	if err := h.uc.RegisterParty(party); err != nil {
		return c.JSON(http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to register party",
		})
	}

	return c.JSON(http.StatusCreated, Response{
		Status:  http.StatusCreated,
		Message: "Party registered",
		Data:    party,
	})
}

type linkReferralRequest struct {
	ReferredID string `json:"referredId"`
	ReferrerID string `json:"referrerId"`
}

func (h *ReferralHandler) LinkReferral(c echo.Context) error {
	var req linkReferralRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if req.ReferredID == "" || req.ReferrerID == "" || req.ReferredID == req.ReferrerID {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "referredId and referrerId must be distinct and non-empty",
		})
	}

	if err := h.uc.LinkReferral(req.ReferredID, req.ReferrerID); err != nil {
		return c.JSON(http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to link referral",
		})
	}

	return c.JSON(http.StatusCreated, Response{
		Status:  http.StatusCreated,
		Message: "Referral linked",
	})
}

type registerBondingRequest struct {
	AffiliateID    string `json:"affiliateId"`
	ProviderID     string `json:"providerId"`
	CommissionRate int64  `json:"commissionRate"`
}

func (h *ReferralHandler) RegisterBonding(c echo.Context) error {
	var req registerBondingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if req.AffiliateID == "" || req.ProviderID == "" {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "affiliateId and providerId are required",
		})
	}

	bonding := &domain.Bonding{
		AffiliateID:    req.AffiliateID,
		ProviderID:     req.ProviderID,
		CommissionRate: domain.Money(req.CommissionRate),
		Active:         true,
	}
	if err := h.uc.RegisterBonding(bonding); err != nil {
		return c.JSON(http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to register bonding",
		})
	}

	return c.JSON(http.StatusCreated, Response{
		Status:  http.StatusCreated,
		Message: "Bonding registered",
		Data:    bonding,
	})
}
