package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	apierrors "merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/models"
)

var (
	ErrNotStarted      = errors.New("poll controller is not started")
	ErrInvalidInterval = errors.New("poll interval must be positive")
)

// Status of a poll controller
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// State is what a controller exposes to readers. Data is the last snapshot
// applied and is kept across failures.
type State[T any] struct {
	Status Status                `json:"status"`
	Data   *models.Snapshot[T]   `json:"data"`
	Err    *apierrors.FetchError `json:"error,omitempty"`
}

// Stats counts fetch outcomes since the controller was created
type Stats struct {
	Issued    uint64 `json:"issued"`
	Applied   uint64 `json:"applied"`
	Failed    uint64 `json:"failed"`
	Discarded uint64 `json:"discarded"`
}

type Options[T any] struct {
	// Name labels logs, metrics and cache entries
	Name string
	// RequestTimeout bounds each fetch; zero means no timeout
	RequestTimeout time.Duration
	Logger         *slog.Logger
	Metrics        Recorder
	Cache          SnapshotCache[T]
}

// Controller polls a Source for one fetch key at a time. Every fetch is
// tagged with a sequence number when issued and its result is applied only
// if no later fetch has been applied and the controller has not been stopped
// or re-keyed since.
type Controller[K models.FetchKey, T any] struct {
	source  Source[K, T]
	name    string
	timeout time.Duration
	logger  *slog.Logger
	metrics Recorder
	cache   SnapshotCache[T]
	now     func() time.Time

	// lifecycle serialises Start and Stop
	lifecycle sync.Mutex

	mu        sync.Mutex
	state     State[T]
	running   bool
	hasKey    bool
	key       K
	interval  time.Duration
	runCtx    context.Context
	cancelRun context.CancelFunc
	loopDone  chan struct{}
	issued    uint64
	watermark uint64
	stats     Stats

	listeners    map[int]func(State[T])
	nextListener int

	// effects orders cache writes and listener calls by sequence;
	// lastEffect is the newest sequence they were run for
	effects    sync.Mutex
	lastEffect uint64
}

func NewController[K models.FetchKey, T any](source Source[K, T], opts Options[T]) *Controller[K, T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = noopRecorder{}
	}
	name := opts.Name
	if name == "" {
		name = "poller"
	}

	return &Controller[K, T]{
		source:    source,
		name:      name,
		timeout:   opts.RequestTimeout,
		logger:    logger.With("poller", name),
		metrics:   metrics,
		cache:     opts.Cache,
		now:       time.Now,
		state:     State[T]{Status: StatusIdle},
		listeners: make(map[int]func(State[T])),
	}
}

// Start fetches key immediately and then every interval. Starting with the
// key and interval already running does nothing. Starting with another key
// stops the current schedule first and drops the data of the old key.
func (c *Controller[K, T]) Start(key K, interval time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	if c.running && c.key == key && c.interval == interval {
		c.mu.Unlock()
		return nil
	}
	keyChanged := !c.hasKey || c.key != key
	done := c.haltLocked()
	c.mu.Unlock()

	if done != nil {
		<-done
	}

	var warm *models.Snapshot[T]
	if keyChanged {
		warm = c.loadCached(key)
	}

	c.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	c.key = key
	c.hasKey = true
	c.interval = interval
	c.running = true
	c.runCtx = ctx
	c.cancelRun = cancel
	c.loopDone = make(chan struct{})

	if keyChanged {
		c.state = State[T]{Status: StatusLoading, Data: warm}
	} else if c.state.Data == nil || c.state.Status == StatusIdle {
		c.state.Status = StatusLoading
	}
	seq := c.issueLocked()
	loopDone := c.loopDone
	notify := c.listenersLocked()
	state := c.state
	c.mu.Unlock()

	c.logger.Info("polling started",
		"params", key.Params(),
		"interval", interval.String(),
		"warm_start", warm != nil,
	)
	c.effects.Lock()
	if seq-1 > c.lastEffect {
		c.lastEffect = seq - 1
	}
	c.notify(notify, state)
	c.effects.Unlock()

	go c.fetch(ctx, key, seq)
	go c.loop(ctx, key, interval, loopDone)
	return nil
}

// Stop cancels the schedule and any in-flight fetch. Results that arrive
// afterwards are discarded. Calling Stop on a stopped controller is a no-op.
func (c *Controller[K, T]) Stop() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	wasRunning := c.running
	done := c.haltLocked()
	c.mu.Unlock()

	if done != nil {
		<-done
	}
	if wasRunning {
		c.logger.Info("polling stopped")
	}
}

// Refetch issues one fetch now without touching the schedule
func (c *Controller[K, T]) Refetch() error {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return ErrNotStarted
	}
	ctx, key := c.runCtx, c.key
	seq := c.issueLocked()
	c.mu.Unlock()

	go c.fetch(ctx, key, seq)
	return nil
}

// State returns the current state. The snapshot it points to is never
// modified.
func (c *Controller[K, T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Key returns the running fetch key
func (c *Controller[K, T]) Key() (K, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.key, c.running
}

func (c *Controller[K, T]) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Controller[K, T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Subscribe registers fn to be called after every state change, in issue
// order. fn must not block or call back into the controller. The returned
// function removes it.
func (c *Controller[K, T]) Subscribe(fn func(State[T])) func() {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// haltLocked cancels the running schedule and raises the watermark so every
// fetch issued so far is ignored. It returns the channel closed when the
// schedule goroutine has exited, or nil when nothing was running.
func (c *Controller[K, T]) haltLocked() chan struct{} {
	c.watermark = c.issued
	if !c.running {
		return nil
	}
	c.running = false
	c.cancelRun()
	done := c.loopDone
	c.loopDone = nil
	if c.state.Status == StatusLoading {
		c.state.Status = StatusIdle
	}
	return done
}

func (c *Controller[K, T]) issueLocked() uint64 {
	c.issued++
	c.stats.Issued++
	return c.issued
}

func (c *Controller[K, T]) loop(ctx context.Context, key K, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			if ctx.Err() != nil {
				c.mu.Unlock()
				return
			}
			seq := c.issueLocked()
			c.mu.Unlock()

			go c.fetch(ctx, key, seq)
		}
	}
}

func (c *Controller[K, T]) fetch(ctx context.Context, key K, seq uint64) {
	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	page, err := c.source.Fetch(reqCtx, key)
	c.metrics.RecordProcessingTime(MetricFetchDuration, time.Since(start))

	c.apply(key, seq, page, err)
}

func (c *Controller[K, T]) apply(key K, seq uint64, page models.Page[T], err error) {
	tags := map[string]string{"poller": c.name}

	c.mu.Lock()
	if seq <= c.watermark {
		c.stats.Discarded++
		c.mu.Unlock()

		c.metrics.IncrementCounter(MetricFetchDiscarded, tags)
		c.logger.Debug("discarding stale fetch result", "sequence", seq)
		return
	}
	c.watermark = seq

	var snapshot *models.Snapshot[T]
	if err != nil {
		fe := apierrors.AsFetchError(err)
		c.state = State[T]{Status: StatusError, Data: c.state.Data, Err: fe}
		c.stats.Failed++
	} else {
		snapshot = models.NewSnapshot(page, key.Params(), seq, c.now())
		c.state = State[T]{Status: StatusReady, Data: snapshot}
		c.stats.Applied++
	}
	state := c.state
	notify := c.listenersLocked()
	c.mu.Unlock()

	if err != nil {
		tags["kind"] = string(state.Err.Kind)
		c.metrics.IncrementCounter(MetricFetchFailed, tags)
		c.logger.Warn("fetch failed, keeping previous snapshot",
			"sequence", seq,
			"error", err.Error(),
			"has_data", state.Data != nil,
		)
	} else {
		c.metrics.IncrementCounter(MetricFetchSuccess, tags)
		c.logger.Debug("snapshot applied", "sequence", seq, "records", snapshot.Len())
	}

	c.effects.Lock()
	defer c.effects.Unlock()
	// a newer result already reached the cache and listeners
	if seq <= c.lastEffect {
		return
	}
	c.lastEffect = seq
	if snapshot != nil {
		c.saveCached(snapshot)
	}
	c.notify(notify, state)
}

func (c *Controller[K, T]) listenersLocked() []func(State[T]) {
	if len(c.listeners) == 0 {
		return nil
	}
	fns := make([]func(State[T]), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	return fns
}

func (c *Controller[K, T]) notify(fns []func(State[T]), state State[T]) {
	for _, fn := range fns {
		fn(state)
	}
}

func (c *Controller[K, T]) loadCached(key K) *models.Snapshot[T] {
	if c.cache == nil {
		return nil
	}
	snapshot, err := c.cache.Load(c.name, key.Params())
	if err != nil {
		c.logger.Warn("failed to load cached snapshot", "error", err.Error())
		return nil
	}
	return snapshot
}

func (c *Controller[K, T]) saveCached(snapshot *models.Snapshot[T]) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Save(c.name, snapshot); err != nil {
		c.logger.Warn("failed to cache snapshot", "error", err.Error())
	}
}
