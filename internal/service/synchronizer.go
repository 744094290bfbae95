// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pos-client/internal/adapter"
	"github.com/MKhiriev/go-pos-client/internal/config"
	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/internal/pagecache"
	"github.com/MKhiriev/go-pos-client/internal/store"
	"github.com/MKhiriev/go-pos-client/internal/validators"
	"github.com/MKhiriev/go-pos-client/internal/workers"
	"github.com/MKhiriev/go-pos-client/models"
)

// SyncOptions configures one Synchronizer.
type SyncOptions struct {
	PageSize        int
	PageCacheSize   int
	SearchDebounce  time.Duration
	RefetchThrottle time.Duration
	// MirrorReadCap bounds the mirror after fetches and updates,
	// MirrorCreateCap after creates.
	MirrorReadCap   int
	MirrorCreateCap int

	// Clock drives the debounce and throttle timers. Nil means wall time.
	Clock workers.Clock
}

// SyncOptionsFromConfig maps the validated sync section of the client
// configuration.
func SyncOptionsFromConfig(cfg config.ClientSync) SyncOptions {
	return SyncOptions{
		PageSize:        cfg.PageSize,
		PageCacheSize:   cfg.PageCacheSize,
		SearchDebounce:  cfg.SearchDebounce,
		RefetchThrottle: cfg.RefetchThrottle,
		MirrorReadCap:   cfg.MirrorReadCap,
		MirrorCreateCap: cfg.MirrorCreateCap,
	}
}

// Synchronizer keeps one paginated list screen consistent with the remote
// API. It owns the page cache of the active query and the local mirror of
// its entity.
//
// Query changes are applied at once and fetched asynchronously: search
// terms pass through a debouncer, and query changes that need data through
// a throttler whose output starts a fetch. Pages cached from the remote
// API are served without a request. Each change of the query key
// bumps an epoch; a fetch finishing under an older epoch does not touch
// the cache. Mutations go to the remote API first and patch the cache and
// the mirror locally without refetching.
//
// Mirror failures are logged and never returned. All methods are safe for
// concurrent use.
type Synchronizer[T models.Entity, I any] struct {
	schema models.EntitySchema
	remote adapter.EntityAdapter[T, I]
	mirror store.MirrorRepository[T]
	opts   SyncOptions

	queryValidator validators.Validator
	inputValidator validators.Validator

	search   *workers.Debouncer[string]
	refetch  *workers.Throttler[models.Query]
	inflight singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	query    models.Query
	epoch    uint64
	cache    *pagecache.Cache[T]
	total    int
	degraded map[int]error
	lastErr  error
	closed   bool
	updates  chan models.PageView[T]

	logger *logger.Logger
}

// NewSynchronizer returns an idle Synchronizer on the first page of an
// unfiltered query. Nothing is fetched until a query setter, Refresh or
// FetchPage is called.
func NewSynchronizer[T models.Entity, I any](
	schema models.EntitySchema,
	remote adapter.EntityAdapter[T, I],
	mirror store.MirrorRepository[T],
	opts SyncOptions,
	log *logger.Logger,
) *Synchronizer[T, I] {
	if opts.MirrorReadCap <= 0 {
		opts.MirrorReadCap = config.DefaultMirrorReadCap
	}
	if opts.MirrorCreateCap <= 0 {
		opts.MirrorCreateCap = config.DefaultMirrorCreateCap
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Synchronizer[T, I]{
		schema:         schema,
		remote:         remote,
		mirror:         mirror,
		opts:           opts,
		queryValidator: validators.NewQueryValidator(schema),
		inputValidator: validators.NewEntityValidator(),
		ctx:            ctx,
		cancel:         cancel,
		query:          models.NewQuery(opts.PageSize),
		cache:          pagecache.New[T](opts.PageCacheSize),
		degraded:       make(map[int]error),
		updates:        make(chan models.PageView[T], 1),
		logger:         log.ForComponent(schema.Name),
	}
	s.search = workers.NewDebouncer(opts.Clock, opts.SearchDebounce, s.applySearch)
	s.refetch = workers.NewThrottler(opts.Clock, opts.RefetchThrottle, s.startFetch)
	return s
}

// Schema describes the entity the list shows.
func (s *Synchronizer[T, I]) Schema() models.EntitySchema {
	return s.schema
}

// Query returns a copy of the active query.
func (s *Synchronizer[T, I]) Query() models.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneQuery(s.query)
}

// View returns what the screen should show right now.
func (s *Synchronizer[T, I]) View() models.PageView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Synchronizer[T, I]) viewLocked() models.PageView[T] {
	records, loaded := s.cache.Get(s.query.Page)
	view := models.PageView[T]{
		Query:   cloneQuery(s.query),
		Records: records,
		Total:   s.total,
		Loaded:  loaded,
		Err:     s.lastErr,
		Epoch:   s.epoch,
	}
	if cause, ok := s.degraded[s.query.Page]; ok && loaded {
		view.Degraded = true
		view.Err = cause
	}
	return view
}

// Updates delivers the latest view after every change. The channel keeps
// only the newest view and is closed by Close.
func (s *Synchronizer[T, I]) Updates() <-chan models.PageView[T] {
	return s.updates
}

func (s *Synchronizer[T, I]) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	view := s.viewLocked()
	select {
	case s.updates <- view:
		return
	default:
	}
	// Replace the stale view nobody has read yet.
	select {
	case <-s.updates:
	default:
	}
	s.updates <- view
}

// SetSearch schedules a search term. Only the last term of a burst is
// applied, once the debounce delay has passed without a new one.
func (s *Synchronizer[T, I]) SetSearch(term string) {
	s.search.Trigger(term)
}

func (s *Synchronizer[T, I]) applySearch(term string) {
	s.updateQuery(func(q *models.Query) { q.Search = term })
}

// SetColumnFilters replaces the per-column search terms. They are sent
// joined with the search term.
func (s *Synchronizer[T, I]) SetColumnFilters(filters map[string]string) {
	filters = maps.Clone(filters)
	s.updateQuery(func(q *models.Query) { q.Filters = filters })
}

// SetStatus selects a status filter by its label. "All" clears it.
func (s *Synchronizer[T, I]) SetStatus(label string) error {
	if label == "" {
		label = models.StatusAll
	}
	if _, ok := s.schema.StatusValue(label); !ok {
		return fmt.Errorf("%w for %s: %q", ErrUnknownStatus, s.schema.Name, label)
	}
	s.updateQuery(func(q *models.Query) { q.Status = label })
	return nil
}

// SetPaymentMethod filters invoices by payment method. Empty clears it.
func (s *Synchronizer[T, I]) SetPaymentMethod(method string) error {
	return s.validatedUpdate(validators.FieldPaymentMethod, func(q *models.Query) { q.PaymentMethod = method })
}

// SetDateRange filters by creation date, both bounds inclusive and
// formatted YYYY-MM-DD. Either bound may be empty.
func (s *Synchronizer[T, I]) SetDateRange(start, end string) error {
	return s.validatedUpdate(validators.FieldDateRange, func(q *models.Query) {
		q.StartDate, q.EndDate = start, end
	})
}

// SetSort orders the list, e.g. "created_at desc". Empty restores the
// server's default order.
func (s *Synchronizer[T, I]) SetSort(orderBy string) error {
	return s.validatedUpdate(validators.FieldOrderBy, func(q *models.Query) { q.OrderBy = orderBy })
}

// SetPage moves to a zero-based page. Cached pages survive.
func (s *Synchronizer[T, I]) SetPage(page int) error {
	if page < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	s.updateQuery(func(q *models.Query) { q.Page = page })
	return nil
}

// SetPageSize changes the page size, clamped to the accepted range.
func (s *Synchronizer[T, I]) SetPageSize(size int) {
	size = models.ClampPageSize(size)
	s.updateQuery(func(q *models.Query) { q.PageSize = size })
}

func (s *Synchronizer[T, I]) validatedUpdate(field string, mutate func(*models.Query)) error {
	return s.applyQuery(mutate, func(q models.Query) error {
		return s.queryValidator.Validate(context.Background(), q, field)
	})
}

func (s *Synchronizer[T, I]) updateQuery(mutate func(*models.Query)) {
	_ = s.applyQuery(mutate, nil)
}

// applyQuery applies mutate to the active query once check accepts the
// result. A change of the query key drops every cached page, returns to
// page 0 and starts a new epoch. A page already cached from the remote API
// under the active key is shown without a new fetch.
func (s *Synchronizer[T, I]) applyQuery(mutate func(*models.Query), check func(models.Query) error) error {
	s.mu.Lock()
	next := cloneQuery(s.query)
	mutate(&next)
	if check != nil {
		if err := check(next); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	if s.closed || sameQuery(next, s.query) {
		s.mu.Unlock()
		return nil
	}

	fresh := false
	if next.Key() != s.query.Key() {
		next.Page = 0
		s.epoch++
		s.cache.InvalidateAll()
		clear(s.degraded)
		s.lastErr = nil
	} else {
		_, cached := s.cache.Get(next.Page)
		_, degraded := s.degraded[next.Page]
		fresh = cached && !degraded
	}
	s.query = next
	s.mu.Unlock()

	s.notify()
	if !fresh {
		s.refetch.Trigger(cloneQuery(next))
	}
	return nil
}

func sameQuery(a, b models.Query) bool {
	return a.Key() == b.Key() && a.Page == b.Page && a.Search == b.Search && maps.Equal(a.Filters, b.Filters)
}

// startFetch runs a throttled fetch in the background.
func (s *Synchronizer[T, I]) startFetch(q models.Query) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		if _, err := s.FetchPage(s.ctx, q); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn().Err(err).
				Str("func", "Synchronizer.startFetch").
				Int("page", q.Page).
				Msg("background fetch failed")
		}
	}()
}

// Close cancels pending timers and in-flight fetches and waits for them.
// The Updates channel is closed. Close is idempotent.
func (s *Synchronizer[T, I]) Close() {
	s.search.Cancel()
	s.refetch.Cancel()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.updates)
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *Synchronizer[T, I]) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func cloneQuery(q models.Query) models.Query {
	q.Filters = maps.Clone(q.Filters)
	return q
}
