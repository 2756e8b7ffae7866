package mockapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"merchant-dashboard/internal/config"
	"merchant-dashboard/internal/dto"
	"merchant-dashboard/internal/middleware"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/validation"
)

const (
	// SuccessCode is the envelope code of every successful response
	SuccessCode    = "200"
	successMessage = "SUCCESS"

	defaultTxnPageSize = 20
	approvedCode       = "00"
)

// Server simulates the merchant REST API the dashboard polls. Data lives in
// memory and is generated from the configured seed.
type Server struct {
	cfg    config.MockAPIConfig
	gen    *Generator
	echo   *echo.Echo
	logger *slog.Logger

	mu           sync.RWMutex
	merchants    []models.Merchant
	index        map[int64]int
	transactions map[string][]models.Transaction
	nextTxnID    int64

	roll func() float64
}

func NewServer(cfg config.MockAPIConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gen := NewGenerator(cfg.Seed, time.Now())
	s := &Server{
		cfg:          cfg,
		gen:          gen,
		logger:       logger.With("component", "mockapi"),
		transactions: make(map[string][]models.Transaction),
		nextTxnID:    1,
		roll:         gen.Chance,
	}
	s.merchants = gen.Merchants(cfg.Merchants)
	s.reindex()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.PanicRecovery(s.logger))
	e.Use(middleware.RequestID())
	s.registerRoutes(e)
	s.echo = e

	return s
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until ctx is cancelled
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("upstream simulator listening", "addr", addr, "merchants", len(s.merchants))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes(e *echo.Echo) {
	api := e.Group("/api/v1/merchants", s.injectFailures)
	api.GET("/getAllMerchants", s.listMerchants)
	api.POST("", s.createMerchant)
	api.POST("/transactions", s.createTransaction)
	api.GET("/:id", s.getMerchant)
	api.PUT("/:id", s.updateMerchant)
	api.GET("/:id/transactions", s.listTransactions)
}

// injectFailures answers with a 503 envelope at the configured rate
func (s *Server) injectFailures(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.cfg.FailureRate > 0 && s.shouldFail() {
			s.logger.Debug("injecting upstream failure", "path", c.Request().URL.Path)
			return fail(c, http.StatusServiceUnavailable, "503", "Service temporarily unavailable")
		}
		return next(c)
	}
}

func (s *Server) shouldFail() bool {
	return s.roll() < s.cfg.FailureRate
}

func success[T any](c echo.Context, data *T) error {
	return c.JSON(http.StatusOK, dto.NewEnvelope(SuccessCode, successMessage, data))
}

// fail writes an error envelope. Business errors travel with HTTP 200 and the
// code in the envelope, the way the real API reports them.
func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, dto.Envelope[struct{}]{
		ResponseCode:    dto.ResponseCode(code),
		ResponseMessage: message,
	})
}

func (s *Server) listMerchants(c echo.Context) error {
	s.mu.RLock()
	merchants := make([]models.Merchant, len(s.merchants))
	copy(merchants, s.merchants)
	s.mu.RUnlock()

	return success(c, &dto.MerchantListData{Merchants: &merchants})
}

func (s *Server) getMerchant(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusOK, "400", "Invalid merchant id")
	}

	s.mu.RLock()
	i, found := s.index[id]
	var m models.Merchant
	if found {
		m = s.merchants[i]
	}
	s.mu.RUnlock()

	if !found {
		return fail(c, http.StatusOK, "404", "Merchant not found")
	}
	return success(c, &m)
}

func (s *Server) createMerchant(c echo.Context) error {
	var req dto.CreateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, "400", "Invalid request body")
	}
	if fields := validation.GetValidator().FieldErrors(&req); fields != nil {
		return fail(c, http.StatusOK, "400", validation.Summary(fields))
	}

	s.mu.Lock()
	id := int64(1)
	if n := len(s.merchants); n > 0 {
		id = s.merchants[n-1].MerchantID + 1
	}
	s.merchants = append(s.merchants, models.Merchant{
		MerchantID:       id,
		MerchantName:     req.MerchantName,
		MerchantStatus:   req.MerchantStatus,
		ContactInfo:      req.ContactInfo,
		MerchantCategory: req.MerchantCategory,
		MerchantLocation: req.MerchantLocation,
		PaymentMethod:    req.PaymentMethod,
		MerchantWebsite:  req.MerchantWebsite,
		MerchantType:     req.MerchantType,
		MerchantTags:     req.MerchantTags,
	})
	s.index[id] = len(s.merchants) - 1
	s.mu.Unlock()

	s.logger.Info("merchant created", "merchant_id", id)
	return success(c, &dto.MerchantMutationData{
		MerchantID: strconv.FormatInt(id, 10),
		Message:    "Merchant created successfully",
	})
}

func (s *Server) updateMerchant(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusOK, "400", "Invalid merchant id")
	}

	var req dto.UpdateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, "400", "Invalid request body")
	}
	if fields := validation.GetValidator().FieldErrors(&req); fields != nil {
		return fail(c, http.StatusOK, "400", validation.Summary(fields))
	}

	s.mu.Lock()
	i, found := s.index[id]
	if found {
		m := &s.merchants[i]
		m.MerchantName = req.MerchantName
		m.MerchantStatus = req.MerchantStatus
		m.ContactInfo = req.ContactInfo
		m.MerchantCategory = req.MerchantCategory
		m.MerchantLocation = req.MerchantLocation
		m.MerchantRating = req.MerchantRating
		m.NumOrders = req.NumOrders
		m.PaymentMethod = req.PaymentMethod
		m.MerchantLogo = req.MerchantLogo
		m.MerchantWebsite = req.MerchantWebsite
		m.MerchantType = req.MerchantType
		m.MerchantTags = req.MerchantTags
	}
	s.mu.Unlock()

	if !found {
		return fail(c, http.StatusOK, "404", "Merchant not found")
	}
	return success(c, &dto.MerchantMutationData{
		MerchantID: strconv.FormatInt(id, 10),
		Message:    "Merchant updated successfully",
	})
}

type txnQuery struct {
	page, size int
	start, end time.Time
	status     string
}

func parseTxnQuery(c echo.Context) (txnQuery, error) {
	q := txnQuery{page: 0, size: defaultTxnPageSize}
	var err error

	if v := c.QueryParam("page"); v != "" {
		if q.page, err = strconv.Atoi(v); err != nil {
			return q, errors.New("page must be a number")
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if q.size, err = strconv.Atoi(v); err != nil {
			return q, errors.New("size must be a number")
		}
	}
	if q.page < 0 || q.size <= 0 {
		return q, errors.New("page must be >= 0 and size must be > 0")
	}

	if v := c.QueryParam("startDate"); v != "" {
		if q.start, err = time.Parse(models.DateLayout, v); err != nil {
			return q, models.ErrInvalidDate
		}
	}
	if v := c.QueryParam("endDate"); v != "" {
		day, err := time.Parse(models.DateLayout, v)
		if err != nil {
			return q, models.ErrInvalidDate
		}
		q.end = day.Add(24*time.Hour - time.Second)
	}
	if !q.start.IsZero() && !q.end.IsZero() && q.start.After(q.end) {
		return q, errors.New("startDate cannot be after endDate")
	}

	q.status = strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	return q, nil
}

func (q txnQuery) matches(t models.Transaction) bool {
	if q.status != "" && strings.ToLower(t.Status) != q.status {
		return false
	}
	if q.start.IsZero() && q.end.IsZero() {
		return true
	}
	ts, err := time.Parse(time.RFC3339, t.TxnDate)
	if err != nil {
		return false
	}
	if !q.start.IsZero() && ts.Before(q.start) {
		return false
	}
	if !q.end.IsZero() && ts.After(q.end) {
		return false
	}
	return true
}

func (s *Server) listTransactions(c echo.Context) error {
	merchantID := c.Param("id")
	q, err := parseTxnQuery(c)
	if err != nil {
		return fail(c, http.StatusOK, "400", err.Error())
	}

	all := s.merchantTransactions(merchantID)
	matched := make([]models.Transaction, 0, len(all))
	for _, t := range all {
		if q.matches(t) {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].TxnDate > matched[j].TxnDate
	})

	return success(c, buildTransactionList(merchantID, q, matched))
}

func buildTransactionList(merchantID string, q txnQuery, matched []models.Transaction) *dto.TransactionListData {
	total := len(matched)
	sum := decimal.Zero
	byStatus := make(map[string]int)
	for _, t := range matched {
		sum = sum.Add(t.Amount)
		byStatus[t.NormalizedStatus()]++
	}

	from := q.page * q.size
	if from > total {
		from = total
	}
	to := from + q.size
	if to > total {
		to = total
	}

	raw := make([]dto.RawTransaction, 0, to-from)
	for _, t := range matched[from:to] {
		raw = append(raw, toRaw(t))
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + q.size - 1) / q.size
	}
	currency := models.DefaultCurrency

	data := &dto.TransactionListData{
		MerchantID: &merchantID,
		Summary: &dto.TransactionTotals{
			TotalTransactions: &total,
			TotalAmount:       &sum,
			Currency:          &currency,
			ByStatus:          byStatus,
		},
		Transactions: &raw,
		Pagination: &dto.RawPagination{
			Page:          &q.page,
			Size:          &q.size,
			TotalPages:    &totalPages,
			TotalElements: &total,
		},
	}
	if !q.start.IsZero() || !q.end.IsZero() {
		data.DateRange = &dto.DateRange{}
		if !q.start.IsZero() {
			data.DateRange.Start = q.start.Format(time.RFC3339)
		}
		if !q.end.IsZero() {
			data.DateRange.End = q.end.Format(time.RFC3339)
		}
	}
	return data
}

func toRaw(t models.Transaction) dto.RawTransaction {
	raw := dto.RawTransaction{
		TxnID:     &t.TxnID,
		Amount:    &t.Amount,
		Currency:  &t.Currency,
		Status:    &t.Status,
		CardType:  &t.CardType,
		CardLast4: &t.CardLast4,
		Acquirer:  &t.Acquirer,
		Issuer:    &t.Issuer,
		Timestamp: &t.TxnDate,
	}
	for i := range t.Details {
		d := t.Details[i]
		raw.Details = append(raw.Details, dto.RawTransactionDetail{
			DetailID:    &d.DetailID,
			Type:        &d.Type,
			Amount:      &d.Amount,
			Description: &d.Description,
		})
	}
	return raw
}

func (s *Server) createTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, "400", "Invalid request body")
	}
	if fields := validation.GetValidator().FieldErrors(&req); fields != nil {
		return fail(c, http.StatusOK, "400", validation.Summary(fields))
	}

	// make sure the generated history exists before appending to it
	s.merchantTransactions(req.MerchantID)

	status := models.TransactionStatusCompleted
	if req.ResponseCode != approvedCode {
		status = models.TransactionStatusFailed
	}
	now := time.Now().UTC().Format(time.RFC3339)

	s.mu.Lock()
	id := s.nextTxnID
	s.nextTxnID++
	s.transactions[req.MerchantID] = append(s.transactions[req.MerchantID], models.Transaction{
		TxnID:      id,
		MerchantID: req.MerchantID,
		Amount:     decimal.New(req.Amount, -2),
		Currency:   strings.ToUpper(req.Currency),
		Status:     status,
		CardType:   req.CardType,
		CardLast4:  req.CardLast4,
		AuthCode:   req.AuthCode,
		TxnDate:    now,
		CreatedAt:  now,
	})
	s.mu.Unlock()

	s.logger.Info("transaction created", "merchant_id", req.MerchantID, "txn_id", id, "status", status)
	return success(c, &dto.CreateTransactionData{
		TransactionID:   strconv.FormatInt(id, 10),
		ResponseMessage: "Transaction created successfully",
	})
}

// merchantTransactions returns the history of merchantID, generating it on
// first access. Ids that do not follow the MCH-nnnnn pattern of a known
// merchant get no history.
func (s *Server) merchantTransactions(merchantID string) []models.Transaction {
	s.mu.RLock()
	txns, found := s.transactions[merchantID]
	s.mu.RUnlock()
	if found {
		return txns
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if txns, found := s.transactions[merchantID]; found {
		return txns
	}

	txns = []models.Transaction{}
	if category, known := s.categoryOf(merchantID); known {
		txns = s.gen.Transactions(merchantID, category, s.cfg.Transactions, s.nextTxnID)
		s.nextTxnID += int64(len(txns))
	}
	s.transactions[merchantID] = txns
	return txns
}

func (s *Server) categoryOf(merchantID string) (string, bool) {
	n, err := strconv.ParseInt(strings.TrimPrefix(merchantID, "MCH-"), 10, 64)
	if err != nil || TransactionMerchantID(n) != merchantID {
		return "", false
	}
	i, found := s.index[n]
	if !found {
		return "", false
	}
	return s.merchants[i].MerchantCategory, true
}

func (s *Server) reindex() {
	s.index = make(map[int64]int, len(s.merchants))
	for i, m := range s.merchants {
		s.index[m.MerchantID] = i
	}
}
