package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/services"
)

const (
	defaultAuditLimit = 20
	maxAuditLimit     = 100
	defaultAuditSince = 24 * time.Hour
)

// AuditHandler exposes the mutation log
type AuditHandler struct {
	logs services.MutationLogServiceInterface
	now  func() time.Time
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(logs services.MutationLogServiceInterface) *AuditHandler {
	return &AuditHandler{logs: logs, now: time.Now}
}

// ListMutations returns submitted mutations, newest first
// @Summary List mutations
// @Description Paginated audit trail of merchant and transaction submits
// @Tags Audit
// @Produce json
// @Param operation query string false "create_merchant, update_merchant or create_transaction"
// @Param outcome query string false "success, rejected or failed"
// @Param since query string false "RFC3339 or YYYY-MM-DD lower bound"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20) maximum(100)
// @Success 200 {object} SuccessResponse "Mutation logs with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /audit/mutations [get]
func (h *AuditHandler) ListMutations(c echo.Context) error {
	page := getIntParam(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := getIntParam(c, "limit", defaultAuditLimit)
	if limit < 1 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	since, err := getTimeParam(c, "since")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	filters := models.MutationLogFilters{
		Operation: strings.TrimSpace(c.QueryParam("operation")),
		Outcome:   strings.TrimSpace(c.QueryParam("outcome")),
		Since:     since,
	}

	logs, total, err := h.logs.Recent(filters, (page-1)*limit, limit)
	if err != nil {
		return SendDatabaseError(c, err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: map[string]interface{}{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// MutationSummary counts mutations per outcome
// @Summary Mutation outcomes
// @Tags Audit
// @Produce json
// @Param since query string false "RFC3339 or YYYY-MM-DD lower bound, defaults to the last 24 hours"
// @Success 200 {object} SuccessResponse "Counts keyed by outcome"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /audit/mutations/summary [get]
func (h *AuditHandler) MutationSummary(c echo.Context) error {
	since, err := getTimeParam(c, "since")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	if since == nil {
		t := h.now().Add(-defaultAuditSince)
		since = &t
	}

	counts, err := h.logs.OutcomeCounts(*since)
	if err != nil {
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: counts,
		Meta: map[string]string{"since": since.UTC().Format(time.RFC3339)},
	})
}
