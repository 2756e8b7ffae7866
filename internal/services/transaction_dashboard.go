package services

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"merchant-dashboard/internal/dto"
	apierrors "merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/poller"
	"merchant-dashboard/internal/summary"
	"merchant-dashboard/internal/view"
)

// TransactionDashboard polls one server-side page of a merchant's
// transactions. Merchant, dates, status and page form the fetch key; the
// free-text search filters the loaded page locally.
type TransactionDashboard struct {
	api             UpstreamAPI
	controller      *poller.Controller[models.TransactionKey, models.Transaction]
	view            *view.View[models.Transaction]
	submitter       *Submitter
	interval        time.Duration
	locale          string
	defaultCurrency string
	formatters      *summary.Formatters
	logger          *slog.Logger

	// mu guards key and keeps it in step with the controller's key
	mu         sync.Mutex
	key        models.TransactionKey
	summaryFor *models.Snapshot[models.Transaction]
	summary    summary.Summary
}

func NewTransactionDashboard(api UpstreamAPI, initial models.TransactionKey, opts DashboardOptions) *TransactionDashboard {
	opts = opts.withDefaults()
	if initial.Size < 1 {
		initial.Size = models.DefaultTransactionPageSize
	}

	source := poller.SourceFunc[models.TransactionKey, models.Transaction](api.ListTransactions)
	controller := poller.NewController[models.TransactionKey, models.Transaction](
		source, controllerOptions[models.Transaction](TransactionPollerName, opts))
	controller.Subscribe(recordSnapshotSize[models.Transaction](opts.Metrics, TransactionPollerName))

	d := &TransactionDashboard{
		api:        api,
		controller: controller,
		// the server pages; the view only filters the loaded page
		view:            view.New[models.Transaction](models.MaxTransactionPageSize),
		submitter:       NewSubmitter(controller, opts.MutationLogs, opts.Metrics, opts.Logger),
		interval:        opts.Interval,
		locale:          opts.Locale,
		defaultCurrency: opts.DefaultCurrency,
		formatters:      opts.Formatters,
		logger:          opts.Logger.With("dashboard", TransactionPollerName),
		key:             initial,
	}
	// the clamp takes d.mu and restarts the controller, so it runs off the
	// notifying goroutine
	controller.Subscribe(func(state poller.State[models.Transaction]) {
		if state.Status == poller.StatusReady && state.Data != nil {
			go d.clampToSnapshot(state.Data)
		}
	})
	return d
}

func (d *TransactionDashboard) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.controller.Start(d.key, d.interval)
}

func (d *TransactionDashboard) Stop() {
	d.controller.Stop()
}

func (d *TransactionDashboard) Refetch() error {
	return d.controller.Refetch()
}

// Key returns the fetch key currently shown
func (d *TransactionDashboard) Key() models.TransactionKey {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.key
}

// SetFetchKey switches merchant, date range or status filter. The page goes
// back to 0 and polling restarts for the new key.
func (d *TransactionDashboard) SetFetchKey(req dto.TransactionKeyRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	size := req.Size
	if size == 0 {
		size = d.key.Size
	}
	next := models.TransactionKey{
		MerchantID: strings.TrimSpace(req.MerchantID),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     strings.ToLower(strings.TrimSpace(req.Status)),
		Page:       0,
		Size:       size,
	}
	if err := next.Validate(); err != nil {
		return apierrors.NewValidationFailure(err.Error())
	}

	if next != d.key {
		d.logger.Info("transaction fetch key changed", "params", next.Params())
	}
	d.key = next
	return d.controller.Start(next, d.interval)
}

// SetFilter sets the free-text search over the loaded page
func (d *TransactionDashboard) SetFilter(search string) {
	d.view.SetFilter(models.Filter{Search: search})
}

// SetPage moves to another server-side page. The page is clamped to the
// range known from the last server total.
func (d *TransactionDashboard) SetPage(page int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if data := d.controller.State().Data; data != nil {
		page = view.ClampPage(page, view.TotalPages(data.TotalCount, d.key.Size))
	} else if page < 0 {
		page = 0
	}
	if page == d.key.Page {
		return nil
	}

	d.key = d.key.WithPage(page)
	return d.controller.Start(d.key, d.interval)
}

// clampToSnapshot moves the fetch key back inside the page range when a
// snapshot for the current key reports a smaller total
func (d *TransactionDashboard) clampToSnapshot(snapshot *models.Snapshot[models.Transaction]) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.controller.Running() || !maps.Equal(snapshot.RequestParams, d.key.Params()) {
		return
	}
	page := view.ClampPage(d.key.Page, view.TotalPages(snapshot.TotalCount, d.key.Size))
	if page == d.key.Page {
		return
	}

	d.logger.Info("server total shrank, clamping page",
		"from", d.key.Page,
		"to", page,
		"total", snapshot.TotalCount,
	)
	d.key = d.key.WithPage(page)
	if err := d.controller.Start(d.key, d.interval); err != nil {
		d.logger.Warn("failed to restart polling on clamped page", "error", err.Error())
	}
}

func (d *TransactionDashboard) Render() dto.TransactionDashboardResponse {
	d.mu.Lock()
	key := d.key
	state := d.controller.State()
	sum := d.summaryLocked(state.Data)
	d.mu.Unlock()

	result := d.view.Result(state.Data)

	total := 0
	if state.Data != nil {
		total = state.Data.TotalCount
	}
	nav := models.Pagination{
		Page:       key.Page,
		PageSize:   key.Size,
		TotalPages: view.TotalPages(total, key.Size),
	}
	if state.Data != nil {
		nav.Page = view.ClampPage(nav.Page, nav.TotalPages)
	}

	resp := dto.TransactionDashboardResponse{
		Status:            string(state.Status),
		Key:               key,
		VisibleRecords:    result.Records,
		TotalPages:        nav.TotalPages,
		CurrentPage:       nav.Page,
		PageSize:          nav.PageSize,
		TotalTransactions: total,
		HasPrev:           nav.HasPrev(),
		HasNext:           nav.HasNext(),
		Filter:            d.view.Filter(),
		Summary: dto.SummaryView{
			TotalAmount:       sum.TotalAmount,
			FormattedTotal:    d.formatters.Get(d.locale, sum.Currency).Format(sum.TotalAmount),
			Currency:          sum.Currency,
			TotalTransactions: sum.Count,
			ByStatus:          sum.CountByStatus,
		},
		Error: state.Err,
	}
	if state.Data != nil {
		fetchedAt := state.Data.FetchedAt
		resp.FetchedAt = &fetchedAt
	}
	return resp
}

// summaryLocked recomputes the summary only when the snapshot changed
func (d *TransactionDashboard) summaryLocked(snapshot *models.Snapshot[models.Transaction]) summary.Summary {
	if snapshot != nil && snapshot == d.summaryFor {
		return d.summary
	}

	var records []models.Transaction
	if snapshot != nil {
		records = snapshot.Records
	}
	d.summary = summary.Summarize(records, d.defaultCurrency)
	d.summaryFor = snapshot
	return d.summary
}

func (d *TransactionDashboard) CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.Ack, error) {
	m := Mutation{
		Operation:      models.MutationCreateTransaction,
		Resource:       models.MutationResourceTransaction,
		ResourceID:     req.MerchantID,
		Payload:        req,
		SuccessMessage: "Successfully inserted New Transaction",
		FailureMessage: "Failed to add transaction",
	}
	return d.submitter.Submit(ctx, m, func(ctx context.Context) (SubmitResult, error) {
		data, err := d.api.CreateTransaction(ctx, req)
		if err != nil {
			return SubmitResult{}, err
		}
		return SubmitResult{ID: data.TransactionID, Message: data.ResponseMessage}, nil
	})
}
