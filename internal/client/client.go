package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"merchant-dashboard/internal/config"
	"merchant-dashboard/internal/dto"
	apierrors "merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/models"
)

const (
	userAgent       = "merchant-dashboard/1.0"
	maxResponseSize = 10 << 20

	// NoDataMessage is reported when a success envelope carries no payload
	NoDataMessage = "No data returned from API"
)

// Breaker guards the upstream against repeated failures
type Breaker interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
}

// Recorder receives request metrics
type Recorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

const (
	MetricRequest         = "upstream.request"
	MetricRequestDuration = "upstream.request"
)

// Client talks to the merchant REST API. Every call makes exactly one HTTP
// request; retries are left to the caller.
type Client struct {
	baseURL      string
	client       *http.Client
	successCodes map[string]struct{}
	limiter      *rate.Limiter
	breaker      Breaker
	metrics      Recorder
	logger       *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its transport is used as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func WithBreaker(b Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

func WithMetrics(m Recorder) Option {
	return func(c *Client) { c.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for cfg
func New(cfg config.UpstreamConfig, opts ...Option) *Client {
	codes := make(map[string]struct{}, len(cfg.SuccessCodes))
	for _, code := range cfg.SuccessCodes {
		codes[strings.TrimSpace(code)] = struct{}{}
	}
	if len(codes) == 0 {
		codes["200"] = struct{}{}
	}

	limit := rate.Inf
	if cfg.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimitPerSecond)
	}
	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		successCodes: codes,
		limiter:      rate.NewLimiter(limit, burst),
		client: &http.Client{
			Transport: &HeaderTransport{userAgent: userAgent, base: http.DefaultTransport},
			Timeout:   timeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsSuccess reports whether code is one of the configured success codes
func (c *Client) IsSuccess(code string) bool {
	_, ok := c.successCodes[code]
	return ok
}

// ListMerchants returns every merchant
func (c *Client) ListMerchants(ctx context.Context) ([]models.Merchant, error) {
	data, err := call[dto.MerchantListData](ctx, c, "list_merchants", http.MethodGet, "/merchants/getAllMerchants", nil, nil, true)
	if err != nil {
		return nil, err
	}
	if data.Merchants == nil {
		return nil, apierrors.NewServerError("", NoDataMessage)
	}
	return *data.Merchants, nil
}

// GetMerchant returns one merchant by id
func (c *Client) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	if strings.TrimSpace(merchantID) == "" {
		return nil, apierrors.NewValidationFailure(models.ErrInvalidMerchantID.Error())
	}
	return call[models.Merchant](ctx, c, "get_merchant", http.MethodGet, "/merchants/"+url.PathEscape(merchantID), nil, nil, true)
}

// CreateMerchant submits a new merchant
func (c *Client) CreateMerchant(ctx context.Context, req *dto.CreateMerchantRequest) (*dto.MerchantMutationData, error) {
	return call[dto.MerchantMutationData](ctx, c, "create_merchant", http.MethodPost, "/merchants", nil, req, false)
}

// UpdateMerchant replaces the editable fields of a merchant
func (c *Client) UpdateMerchant(ctx context.Context, merchantID string, req *dto.UpdateMerchantRequest) (*dto.MerchantMutationData, error) {
	if strings.TrimSpace(merchantID) == "" {
		return nil, apierrors.NewValidationFailure(models.ErrInvalidMerchantID.Error())
	}
	return call[dto.MerchantMutationData](ctx, c, "update_merchant", http.MethodPut, "/merchants/"+url.PathEscape(merchantID), nil, req, false)
}

// ListTransactions fetches one server-side page of a merchant's transactions
func (c *Client) ListTransactions(ctx context.Context, key models.TransactionKey) (models.Page[models.Transaction], error) {
	if err := key.Validate(); err != nil {
		return models.Page[models.Transaction]{}, apierrors.NewValidationFailure(err.Error())
	}

	query := url.Values{}
	for k, v := range key.Params() {
		if k == "merchantId" {
			continue
		}
		query.Set(k, v)
	}

	path := "/merchants/" + url.PathEscape(key.MerchantID) + "/transactions"
	data, err := call[dto.TransactionListData](ctx, c, "list_transactions", http.MethodGet, path, query, nil, true)
	if err != nil {
		return models.Page[models.Transaction]{}, err
	}
	if !data.HasRecords() {
		return models.Page[models.Transaction]{}, apierrors.NewServerError("", NoDataMessage)
	}
	return data.ToPage(key), nil
}

// CreateTransaction submits a new transaction
func (c *Client) CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.CreateTransactionData, error) {
	return call[dto.CreateTransactionData](ctx, c, "create_transaction", http.MethodPost, "/merchants/transactions", nil, req, false)
}

func (c *Client) buildRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	resp.Body.Close()
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp, body, nil
}

// call performs one request and unwraps the envelope
func call[T any](ctx context.Context, c *Client, op, method, path string, query url.Values, body any, requireData bool) (*T, error) {
	start := time.Now()
	data, err := exchange[T](ctx, c, method, path, query, body, requireData)

	outcome := "success"
	if err != nil {
		outcome = string(apierrors.AsFetchError(err).Kind)
	}
	if c.metrics != nil {
		c.metrics.IncrementCounter(MetricRequest, map[string]string{"operation": op, "outcome": outcome})
		c.metrics.RecordProcessingTime(MetricRequestDuration, time.Since(start))
	}
	if err != nil {
		c.logger.Warn("upstream request failed",
			"operation", op,
			"method", method,
			"path", path,
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}
	return data, nil
}

// exchange sends the request and decodes the envelope. With requireData set
// a success envelope without payload is a server error; otherwise a zero
// payload is returned.
func exchange[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, requireData bool) (*T, error) {
	if c.breaker != nil && c.breaker.IsOpen() {
		return nil, apierrors.NewTransportError(apierrors.ErrCircuitOpen)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apierrors.NewTransportError(err)
	}

	req, err := c.buildRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, apierrors.NewTransportError(err)
	}

	resp, raw, err := c.do(req)
	if err != nil {
		c.recordFailure()
		return nil, apierrors.NewTransportError(err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.recordFailure()
	} else {
		c.recordSuccess()
	}

	var env dto.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, apierrors.NewServerError(strconv.Itoa(resp.StatusCode), http.StatusText(resp.StatusCode))
		}
		return nil, apierrors.NewMalformedError(err)
	}

	code := string(env.ResponseCode)
	if !c.IsSuccess(code) {
		if code == "" && resp.StatusCode >= http.StatusBadRequest {
			code = strconv.Itoa(resp.StatusCode)
		}
		return nil, apierrors.NewServerError(code, env.ResponseMessage)
	}

	if env.Data == nil {
		if requireData {
			return nil, apierrors.NewServerError(code, NoDataMessage)
		}
		return new(T), nil
	}
	return env.Data, nil
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

func (c *Client) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}
