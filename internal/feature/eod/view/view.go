// Package view holds the chart view state: one fetch per mount, and the
// loading / error / loaded outcome of that fetch.
package view

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"stockchart/internal/feature/eod/domain"
	"stockchart/internal/feature/eod/domain/entity"
	"stockchart/internal/feature/eod/usecase"
)

// Status is the coarse state of the view.
type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusLoaded  Status = "loaded"
)

// Fetcher loads end-of-day records. It is satisfied by *usecase.EODUsecase.
type Fetcher interface {
	FetchEOD(ctx context.Context, req usecase.EODRequest) ([]entity.PriceRecord, error)
}

// State is a snapshot of the view.
type State struct {
	Status    Status
	IsLoading bool
	IsError   bool
	Err       *domain.FetchError // set when Status is StatusError
	Records   []entity.PriceRecord
	Request   usecase.EODRequest
	UpdatedAt time.Time
}

// ErrorMessage returns the text to display in the error state.
func (s State) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Message
}

// View runs a single fetch per mount and stores its outcome.
// A result that arrives after Unmount, or after a newer Mount, is discarded.
type View struct {
	fetcher Fetcher
	req     usecase.EODRequest
	now     func() time.Time

	mu      sync.RWMutex
	state   State
	mounted bool
	gen     uint64
	base    context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures a View.
type Option func(*View)

// WithClock sets the clock used to stamp State.UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(v *View) { v.now = now }
}

// New creates an unmounted view that will request req on every mount.
// date_to in req is resolved by the fetcher at fetch time when left empty.
func New(fetcher Fetcher, req usecase.EODRequest, opts ...Option) *View {
	v := &View{
		fetcher: fetcher,
		req:     req,
		now:     time.Now,
		base:    context.Background(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.state = v.initialState()
	return v
}

func (v *View) initialState() State {
	return State{Status: StatusLoading, IsLoading: true, Request: v.req}
}

// Mount enters the loading state and starts the fetch in the background.
// ctx bounds the fetch; cancelling it aborts the request. Mounting an already
// mounted view does nothing and returns false.
func (v *View) Mount(ctx context.Context) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mountLocked(ctx)
}

func (v *View) mountLocked(ctx context.Context) bool {
	if v.mounted {
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}

	v.mounted = true
	v.gen++
	v.base = ctx
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.done = make(chan struct{})
	v.state = v.initialState()

	go v.run(fetchCtx, v.gen, v.done)
	return true
}

func (v *View) run(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)

	records, err := v.fetcher.FetchEOD(ctx, v.req)

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted || gen != v.gen {
		slog.Debug("discarding stale eod result", "generation", gen)
		return
	}

	st := State{Request: v.req, UpdatedAt: v.now()}
	if err != nil {
		st.Status = StatusError
		st.IsError = true
		st.Err = domain.AsFetchError(err)
	} else {
		st.Status = StatusLoaded
		st.Records = records
	}
	v.state = st
	v.cancel()
}

// Unmount cancels an in-flight fetch and drops the stored records.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unmountLocked()
}

func (v *View) unmountLocked() {
	if !v.mounted {
		return
	}
	v.mounted = false
	v.gen++
	v.cancel()
	v.state = v.initialState()
}

// Refresh unmounts and mounts again with the context of the last mount,
// starting a new single fetch.
func (v *View) Refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	base := v.base
	v.unmountLocked()
	v.mountLocked(base)
}

// Mounted reports whether the view is mounted.
func (v *View) Mounted() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mounted
}

// Wait blocks until the fetch of the current mount has completed or ctx is done.
// It returns immediately when the view has never been mounted.
func (v *View) Wait(ctx context.Context) error {
	v.mu.RLock()
	done := v.done
	v.mu.RUnlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	st := v.state
	st.Records = slices.Clone(v.state.Records)
	return st
}

// Series derives the chart series from the stored records. ok is false unless
// the view is loaded.
func (v *View) Series() (series entity.ChartSeries, ok bool) {
	st := v.Snapshot()
	if st.Status != StatusLoaded {
		return entity.ChartSeries{}, false
	}
	return entity.BuildSeries(st.Records), true
}
