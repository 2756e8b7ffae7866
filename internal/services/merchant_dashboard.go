package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"merchant-dashboard/internal/dto"
	"merchant-dashboard/internal/models"
	"merchant-dashboard/internal/poller"
	"merchant-dashboard/internal/view"
)

// MerchantDashboard polls the full merchant list and renders a filtered,
// client-side paginated view of it
type MerchantDashboard struct {
	api        UpstreamAPI
	controller *poller.Controller[models.MerchantListKey, models.Merchant]
	view       *view.View[models.Merchant]
	submitter  *Submitter
	interval   time.Duration
	logger     *slog.Logger

	mu            sync.Mutex
	categoriesFor *models.Snapshot[models.Merchant]
	categories    []string
}

func NewMerchantDashboard(api UpstreamAPI, opts DashboardOptions) *MerchantDashboard {
	opts = opts.withDefaults()
	if opts.PageSize < 1 {
		opts.PageSize = models.DefaultMerchantPageSize
	}

	source := poller.SourceFunc[models.MerchantListKey, models.Merchant](
		func(ctx context.Context, _ models.MerchantListKey) (models.Page[models.Merchant], error) {
			merchants, err := api.ListMerchants(ctx)
			if err != nil {
				return models.Page[models.Merchant]{}, err
			}
			return models.Page[models.Merchant]{
				Records:    merchants,
				TotalCount: len(merchants),
				Size:       len(merchants),
			}, nil
		})

	controller := poller.NewController[models.MerchantListKey, models.Merchant](
		source, controllerOptions[models.Merchant](MerchantPollerName, opts))
	controller.Subscribe(recordSnapshotSize[models.Merchant](opts.Metrics, MerchantPollerName))

	return &MerchantDashboard{
		api:        api,
		controller: controller,
		view:       view.New[models.Merchant](opts.PageSize),
		submitter:  NewSubmitter(controller, opts.MutationLogs, opts.Metrics, opts.Logger),
		interval:   opts.Interval,
		logger:     opts.Logger.With("dashboard", MerchantPollerName),
	}
}

// Start begins polling; calling it again while running does nothing
func (d *MerchantDashboard) Start() error {
	return d.controller.Start(models.MerchantListKey{}, d.interval)
}

func (d *MerchantDashboard) Stop() {
	d.controller.Stop()
}

func (d *MerchantDashboard) Refetch() error {
	return d.controller.Refetch()
}

// SetFilter changes the search, status and category filters. A changed
// filter sends the view back to the first page.
func (d *MerchantDashboard) SetFilter(filter models.Filter) {
	if d.view.SetFilter(filter) {
		d.logger.Debug("merchant filter changed", "search", filter.Search, "status", filter.Status, "category", filter.Category)
	}
}

// SetPage selects a page; out of range pages are clamped when rendered
func (d *MerchantDashboard) SetPage(page int) {
	d.view.SetPage(page)
}

func (d *MerchantDashboard) Render() dto.MerchantDashboardResponse {
	state := d.controller.State()
	result := d.view.Result(state.Data)

	resp := dto.MerchantDashboardResponse{
		Status:         string(state.Status),
		VisibleRecords: result.Records,
		TotalPages:     result.TotalPages,
		CurrentPage:    result.Page,
		PageSize:       result.PageSize,
		FilteredCount:  result.FilteredCount,
		TotalCount:     state.Data.Len(),
		PageNumbers:    view.PageNumbers(result.Page, result.TotalPages),
		Filter:         d.view.Filter(),
		Categories:     d.categoriesOf(state.Data),
		Statuses:       models.MerchantStatuses(),
		Error:          state.Err,
	}
	if state.Data != nil {
		fetchedAt := state.Data.FetchedAt
		resp.FetchedAt = &fetchedAt
	}
	return resp
}

// categoriesOf recomputes the category list only when the snapshot changed
func (d *MerchantDashboard) categoriesOf(snapshot *models.Snapshot[models.Merchant]) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if snapshot != nil && snapshot == d.categoriesFor {
		return d.categories
	}

	var records []models.Merchant
	if snapshot != nil {
		records = snapshot.Records
	}
	d.categories = models.DistinctCategories(records)
	d.categoriesFor = snapshot
	return d.categories
}

// GetMerchant reads one merchant straight from the API
func (d *MerchantDashboard) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	return d.api.GetMerchant(ctx, merchantID)
}

func (d *MerchantDashboard) CreateMerchant(ctx context.Context, req *dto.CreateMerchantRequest) (*dto.Ack, error) {
	m := Mutation{
		Operation:      models.MutationCreateMerchant,
		Resource:       models.MutationResourceMerchant,
		Payload:        req,
		SuccessMessage: "Merchant created successfully",
		FailureMessage: "Failed to create merchant",
	}
	return d.submitter.Submit(ctx, m, func(ctx context.Context) (SubmitResult, error) {
		data, err := d.api.CreateMerchant(ctx, req)
		if err != nil {
			return SubmitResult{}, err
		}
		return SubmitResult{ID: data.MerchantID, Message: data.Message}, nil
	})
}

func (d *MerchantDashboard) UpdateMerchant(ctx context.Context, merchantID string, req *dto.UpdateMerchantRequest) (*dto.Ack, error) {
	m := Mutation{
		Operation:      models.MutationUpdateMerchant,
		Resource:       models.MutationResourceMerchant,
		ResourceID:     merchantID,
		Payload:        req,
		SuccessMessage: "Merchant updated successfully",
		FailureMessage: "Failed to update merchant",
	}
	return d.submitter.Submit(ctx, m, func(ctx context.Context) (SubmitResult, error) {
		data, err := d.api.UpdateMerchant(ctx, merchantID, req)
		if err != nil {
			return SubmitResult{}, err
		}
		id := data.MerchantID
		if id == "" {
			id = merchantID
		}
		return SubmitResult{ID: id, Message: data.Message}, nil
	})
}
