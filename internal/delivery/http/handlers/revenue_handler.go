package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filari/revenue-service/internal/domain"
	revenuedto "github.com/filari/revenue-service/internal/usecase/dto/revenue"
	"github.com/filari/revenue-service/internal/usecase/revenue"
)

type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type RevenueHandler struct {
	uc revenue.RevenueUsecase
}

func NewRevenueHandler(uc revenue.RevenueUsecase) *RevenueHandler {
	return &RevenueHandler{uc: uc}
}

func (h *RevenueHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/revenue")
	g.POST("/transactions", h.RegisterTransaction)
	g.POST("/transactions/:id/compute", h.ComputeBreakdown)
	g.GET("/statistics", h.GetStatistics)
	g.GET("/forecast", h.Forecast)
	g.GET("/rates/:referrerId", h.ResolveRate)
}

type registerTransactionRequest struct {
	ClientID             string  `json:"clientId"`
	ProviderID           string  `json:"providerId"`
	ProcessingFee        int64   `json:"processingFee"`
	PlatformRetentionPct float64 `json:"platformRetentionPct"`
}

func (h *RevenueHandler) RegisterTransaction(c echo.Context) error {
	var req registerTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if req.ClientID == "" || req.ProviderID == "" || req.ProcessingFee <= 0 {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "clientId, providerId and a positive processingFee are required",
		})
	}

	txn, err := h.uc.RegisterCompletedFiling(&revenuedto.CreateTransactionInput{
		ClientID:             req.ClientID,
		ProviderID:           req.ProviderID,
		ProcessingFee:        domain.Money(req.ProcessingFee),
		PlatformRetentionPct: req.PlatformRetentionPct,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPercentage) {
			return c.JSON(http.StatusUnprocessableEntity, Response{
				Status:  http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to register transaction",
		})
	}

	return c.JSON(http.StatusCreated, Response{
		Status:  http.StatusCreated,
		Message: "Transaction registered",
		Data:    txn,
	})
}

func (h *RevenueHandler) ComputeBreakdown(c echo.Context) error {
	transactionID := c.Param("id")

	out, err := h.uc.ComputeTransactionRevenue(transactionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRevenueAlreadyCalculated):
			return c.JSON(http.StatusConflict, Response{
				Status:  http.StatusConflict,
				Message: "Revenue already calculated for this transaction",
			})
		case errors.Is(err, domain.ErrTransactionNotFound):
			return c.JSON(http.StatusNotFound, Response{
				Status:  http.StatusNotFound,
				Message: "Transaction not found",
			})
		case errors.Is(err, domain.ErrInvalidPercentage):
			return c.JSON(http.StatusUnprocessableEntity, Response{
				Status:  http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
		default:
			return c.JSON(http.StatusInternalServerError, Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to compute revenue breakdown",
			})
		}
	}

	return c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Message: "Revenue breakdown computed",
		Data:    out,
	})
}

func (h *RevenueHandler) GetStatistics(c echo.Context) error {
	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid 'from' date",
		})
	}
	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid 'to' date",
		})
	}

	stats, err := h.uc.GetStatistics(from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load revenue statistics",
		})
	}

	return c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Message: "Revenue statistics",
		Data:    stats,
	})
}

func (h *RevenueHandler) Forecast(c echo.Context) error {
	months, err := strconv.Atoi(c.QueryParam("months"))
	if err != nil || months < 0 {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: "'months' must be a non-negative integer",
		})
	}

	forecast, err := h.uc.Forecast(months)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to build revenue forecast",
		})
	}

	return c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Message: "Revenue forecast",
		Data:    forecast,
	})
}

func (h *RevenueHandler) ResolveRate(c echo.Context) error {
	referrerID := c.Param("referrerId")
	providerID := c.QueryParam("providerId")

	rate, err := h.uc.ResolveRate(referrerID, providerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to resolve commission rate",
		})
	}

	return c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Message: "Commission rate",
		Data: revenuedto.RateOutput{
			ReferrerID: referrerID,
			ProviderID: providerID,
			Rate:       rate,
		},
	})
}

// parseDateParam accepts either a date-only value or full RFC3339.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
