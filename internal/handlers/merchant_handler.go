package handlers

import (
	goerrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"merchant-dashboard/internal/dto"
	"merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/services"
)

// MerchantHandler serves the merchant list dashboard
type MerchantHandler struct {
	dashboard services.MerchantDashboardInterface
}

// NewMerchantHandler creates a new merchant dashboard handler
func NewMerchantHandler(dashboard services.MerchantDashboardInterface) *MerchantHandler {
	return &MerchantHandler{dashboard: dashboard}
}

// GetDashboard renders the current merchant list state
// @Summary Merchant dashboard
// @Description Returns the last polled merchant list after filters and client-side pagination
// @Tags Merchants
// @Produce json
// @Success 200 {object} dto.MerchantDashboardResponse "Current dashboard state"
// @Router /dashboard/merchants [get]
func (h *MerchantHandler) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Render())
}

// SetFilter changes the search, status and category filters
// @Summary Filter merchants
// @Tags Merchants
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Filter values"
// @Success 200 {object} dto.MerchantDashboardResponse "Dashboard state after filtering"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filter"
// @Router /dashboard/merchants/filter [put]
func (h *MerchantHandler) SetFilter(c echo.Context) error {
	var req dto.FilterRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	h.dashboard.SetFilter(req.ToFilter())
	return c.JSON(http.StatusOK, h.dashboard.Render())
}

// SetPage selects a page of the filtered list
// @Summary Page merchants
// @Tags Merchants
// @Accept json
// @Produce json
// @Param request body dto.PageRequest true "Zero-based page"
// @Success 200 {object} dto.MerchantDashboardResponse "Dashboard state on the new page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid page"
// @Router /dashboard/merchants/page [put]
func (h *MerchantHandler) SetPage(c echo.Context) error {
	var req dto.PageRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	h.dashboard.SetPage(req.Page)
	return c.JSON(http.StatusOK, h.dashboard.Render())
}

// Refetch polls the upstream now without waiting for the next tick
// @Summary Refresh merchants
// @Tags Merchants
// @Produce json
// @Success 202 {object} SuccessResponse "Refresh scheduled"
// @Failure 409 {object} errors.ErrorResponse "DASHBOARD_001 - Polling is not running"
// @Router /dashboard/merchants/refetch [post]
func (h *MerchantHandler) Refetch(c echo.Context) error {
	if err := h.dashboard.Refetch(); err != nil {
		return SendDashboardError(c, err)
	}
	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "Refresh scheduled"})
}

// GetMerchant returns one merchant read directly from the upstream
// @Summary Merchant detail
// @Tags Merchants
// @Produce json
// @Param merchantId path string true "Merchant ID"
// @Success 200 {object} SuccessResponse "Merchant"
// @Failure 404 {object} errors.ErrorResponse "MERCHANT_001 - Merchant not found"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_002 - Upstream error"
// @Router /dashboard/merchants/{merchantId} [get]
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	merchantID := strings.TrimSpace(c.Param("merchantId"))
	if merchantID == "" {
		return SendError(c, errors.MerchantInvalidID)
	}

	merchant, err := h.dashboard.GetMerchant(c.Request().Context(), merchantID)
	if err != nil {
		var fe *errors.FetchError
		if goerrors.As(err, &fe) && fe.Kind == errors.KindServer && fe.Code == "404" {
			return SendError(c, errors.MerchantNotFound)
		}
		return SendDashboardError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: merchant})
}

// CreateMerchant submits a new merchant and refreshes the list on success
// @Summary Create merchant
// @Tags Merchants
// @Accept json
// @Produce json
// @Param request body dto.CreateMerchantRequest true "Merchant"
// @Success 201 {object} dto.Ack "Merchant created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid merchant"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_002 - Upstream rejected the merchant"
// @Router /dashboard/merchants [post]
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	var req dto.CreateMerchantRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ack, err := h.dashboard.CreateMerchant(c.Request().Context(), &req)
	if err != nil {
		return SendDashboardError(c, err)
	}
	return c.JSON(http.StatusCreated, ack)
}

// UpdateMerchant submits new values for a merchant
// @Summary Update merchant
// @Tags Merchants
// @Accept json
// @Produce json
// @Param merchantId path string true "Merchant ID"
// @Param request body dto.UpdateMerchantRequest true "Merchant"
// @Success 200 {object} dto.Ack "Merchant updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid merchant"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_002 - Upstream rejected the update"
// @Router /dashboard/merchants/{merchantId} [put]
func (h *MerchantHandler) UpdateMerchant(c echo.Context) error {
	merchantID := strings.TrimSpace(c.Param("merchantId"))
	if merchantID == "" {
		return SendError(c, errors.MerchantInvalidID)
	}

	var req dto.UpdateMerchantRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ack, err := h.dashboard.UpdateMerchant(c.Request().Context(), merchantID, &req)
	if err != nil {
		return SendDashboardError(c, err)
	}
	return c.JSON(http.StatusOK, ack)
}
