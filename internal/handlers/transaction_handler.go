package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"merchant-dashboard/internal/dto"
	"merchant-dashboard/internal/services"
)

// TransactionHandler serves the transaction dashboard of one merchant
type TransactionHandler struct {
	dashboard services.TransactionDashboardInterface
}

// NewTransactionHandler creates a new transaction dashboard handler
func NewTransactionHandler(dashboard services.TransactionDashboardInterface) *TransactionHandler {
	return &TransactionHandler{dashboard: dashboard}
}

// searchRequest is the body of the free-text filter
type searchRequest struct {
	Search string `json:"search" validate:"max=255"`
}

// GetDashboard renders the current transaction list state
// @Summary Transaction dashboard
// @Description Returns the polled page of transactions, the search filter result and the summary card
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.TransactionDashboardResponse "Current dashboard state"
// @Router /dashboard/transactions [get]
func (h *TransactionHandler) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Render())
}

// SetFetchKey switches merchant, date range, status or page size. Polling
// restarts at page 0.
// @Summary Select transactions
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionKeyRequest true "Fetch key"
// @Success 200 {object} dto.TransactionDashboardResponse "Dashboard state for the new key"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid merchant, dates or size"
// @Router /dashboard/transactions/key [put]
func (h *TransactionHandler) SetFetchKey(c echo.Context) error {
	var req dto.TransactionKeyRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	if err := h.dashboard.SetFetchKey(req); err != nil {
		return SendDashboardError(c, err)
	}
	return c.JSON(http.StatusOK, h.dashboard.Render())
}

// SetFilter sets the free-text search over the loaded page
// @Summary Search transactions
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body searchRequest true "Search text"
// @Success 200 {object} dto.TransactionDashboardResponse "Dashboard state after searching"
// @Router /dashboard/transactions/filter [put]
func (h *TransactionHandler) SetFilter(c echo.Context) error {
	var req searchRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	h.dashboard.SetFilter(req.Search)
	return c.JSON(http.StatusOK, h.dashboard.Render())
}

// SetPage moves to another server-side page, clamped to the known range
// @Summary Page transactions
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.PageRequest true "Zero-based page"
// @Success 200 {object} dto.TransactionDashboardResponse "Dashboard state on the new page"
// @Failure 400 {object} errors.ErrorResponse "Negative page"
// @Router /dashboard/transactions/page [put]
func (h *TransactionHandler) SetPage(c echo.Context) error {
	var req dto.PageRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	if err := h.dashboard.SetPage(req.Page); err != nil {
		return SendDashboardError(c, err)
	}
	return c.JSON(http.StatusOK, h.dashboard.Render())
}

// Refetch polls the upstream now without waiting for the next tick
// @Summary Refresh transactions
// @Tags Transactions
// @Produce json
// @Success 202 {object} SuccessResponse "Refresh scheduled"
// @Failure 409 {object} errors.ErrorResponse "DASHBOARD_001 - Polling is not running"
// @Router /dashboard/transactions/refetch [post]
func (h *TransactionHandler) Refetch(c echo.Context) error {
	if err := h.dashboard.Refetch(); err != nil {
		return SendDashboardError(c, err)
	}
	return c.JSON(http.StatusAccepted, SuccessResponse{Message: "Refresh scheduled"})
}

// CreateTransaction adds a transaction and refreshes the list on success
// @Summary Add transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.Ack "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid transaction"
// @Failure 502 {object} errors.ErrorResponse "UPSTREAM_002 - Upstream rejected the transaction"
// @Router /dashboard/transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	ack, err := h.dashboard.CreateTransaction(c.Request().Context(), &req)
	if err != nil {
		return SendDashboardError(c, err)
	}
	return c.JSON(http.StatusCreated, ack)
}
