package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-pos-client/models"
)

// pageResult is what one fetch produced for a page.
type pageResult[T models.Entity] struct {
	records []T
	total   int
	// cause is the remote failure when records come from the mirror.
	cause error
}

// Refresh refetches the active page.
func (s *Synchronizer[T, I]) Refresh(ctx context.Context) error {
	_, err := s.FetchPage(ctx, s.Query())
	return err
}

// FetchPage loads one page of q. Records come from the remote API and are
// written through to the mirror. When the remote call fails they are
// sliced from the mirror instead and the view is marked degraded; the
// remote failure is then reported in the view, not returned.
//
// Concurrent calls for the same page share one load. The load does not
// stop when a caller gives up waiting; only Close cancels it, so its
// result still reaches the cache for the other callers.
//
// The page cache is only updated when q still matches the active query and
// no query change happened while the fetch was in flight. An error is
// returned when the query is invalid, the context is cancelled or both
// sources failed.
func (s *Synchronizer[T, I]) FetchPage(ctx context.Context, q models.Query) (models.PageView[T], error) {
	if err := s.queryValidator.Validate(ctx, q); err != nil {
		return models.PageView[T]{}, err
	}
	req, err := s.pageRequest(q)
	if err != nil {
		return models.PageView[T]{}, err
	}
	if s.isClosed() {
		return models.PageView[T]{}, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return models.PageView[T]{}, err
	}

	key := q.Key() + "#" + strconv.Itoa(q.Page)
	ch := s.inflight.DoChan(key, func() (any, error) {
		return s.load(ctx, q, req)
	})

	select {
	case <-ctx.Done():
		return models.PageView[T]{}, ctx.Err()
	case r := <-ch:
		if r.Shared {
			s.logger.Debug().
				Str("func", "Synchronizer.FetchPage").
				Int("page", q.Page).
				Msg("joined in-flight fetch")
		}
		if r.Err != nil {
			return models.PageView[T]{}, r.Err
		}
		view := r.Val.(models.PageView[T])
		view.Query = cloneQuery(view.Query)
		view.Records = slices.Clone(view.Records)
		return view, nil
	}
}

// load runs one shared fetch and applies its result. It keeps the values
// of ctx, such as the request id, but is cancelled by Close only.
func (s *Synchronizer[T, I]) load(ctx context.Context, q models.Query, req models.PageRequest) (models.PageView[T], error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.PageView[T]{}, ErrClosed
	}
	s.wg.Add(1)
	issued := s.epoch
	current := q.Key() == s.query.Key()
	s.mu.Unlock()
	defer s.wg.Done()

	loadCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	defer stop()
	unbind := context.AfterFunc(s.ctx, stop)
	defer unbind()

	res, err := s.fetch(loadCtx, q, req)
	if err != nil {
		s.recordFailure(issued, current, err)
		return models.PageView[T]{}, err
	}

	s.mu.Lock()
	if current && issued == s.epoch {
		s.cache.Set(q.Page, res.records)
		s.total = res.total
		if res.cause != nil {
			s.degraded[q.Page] = res.cause
		} else {
			delete(s.degraded, q.Page)
		}
		s.lastErr = nil
	} else {
		s.logger.Debug().
			Str("func", "Synchronizer.load").
			Uint64("issued_epoch", issued).
			Uint64("epoch", s.epoch).
			Int("page", q.Page).
			Msg("dropping stale page")
	}
	s.mu.Unlock()
	s.notify()

	return models.PageView[T]{
		Query:    cloneQuery(q),
		Records:  slices.Clone(res.records),
		Total:    res.total,
		Loaded:   true,
		Degraded: res.cause != nil,
		Err:      res.cause,
		Epoch:    issued,
	}, nil
}

func (s *Synchronizer[T, I]) recordFailure(issued uint64, current bool, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.mu.Lock()
	if current && issued == s.epoch {
		s.lastErr = err
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Synchronizer[T, I]) fetch(ctx context.Context, q models.Query, req models.PageRequest) (pageResult[T], error) {
	page, remoteErr := s.remote.FetchPage(ctx, req)
	if remoteErr == nil {
		s.writeThrough(ctx, page.Data)
		return pageResult[T]{records: page.Data, total: page.Total}, nil
	}

	remoteErr = mapAdapterError(remoteErr)
	if errors.Is(remoteErr, context.Canceled) {
		return pageResult[T]{}, remoteErr
	}
	s.logger.Warn().Err(remoteErr).
		Str("func", "Synchronizer.fetch").
		Int("page", q.Page).
		Msg("remote fetch failed, falling back to local mirror")

	all, err := s.mirror.ScanAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).
			Str("func", "Synchronizer.fetch").
			Msg("local mirror scan failed")
		return pageResult[T]{}, errors.Join(remoteErr, fmt.Errorf("scan local mirror: %w", err))
	}

	return pageResult[T]{
		records: sliceForPage(all, q.Page, q.PageSize),
		total:   len(all),
		cause:   remoteErr,
	}, nil
}

// writeThrough stores fetched records in the mirror and trims it to the
// read cap. Failures only get logged.
func (s *Synchronizer[T, I]) writeThrough(ctx context.Context, records []T) {
	if len(records) == 0 {
		return
	}
	if err := s.mirror.BulkUpsert(ctx, records...); err != nil {
		s.logger.Error().Err(err).
			Str("func", "Synchronizer.writeThrough").
			Int("records", len(records)).
			Msg("local mirror write-through failed")
		return
	}
	s.evict(ctx, s.opts.MirrorReadCap)
}

func (s *Synchronizer[T, I]) evict(ctx context.Context, maxKeep int) {
	n, err := s.mirror.EvictOldest(ctx, maxKeep)
	if err != nil {
		s.logger.Error().Err(err).
			Str("func", "Synchronizer.evict").
			Int("max_keep", maxKeep).
			Msg("local mirror eviction failed")
		return
	}
	if n > 0 {
		s.logger.Debug().
			Str("func", "Synchronizer.evict").
			Int("evicted", n).
			Int("max_keep", maxKeep).
			Msg("evicted oldest mirror records")
	}
}

// sliceForPage returns records[page*size : (page+1)*size], clipped to the
// slice bounds. Filters and sort order are not reapplied.
func sliceForPage[T any](records []T, page, size int) []T {
	start := page * size
	if page < 0 || size <= 0 || start >= len(records) {
		return []T{}
	}
	end := min(start+size, len(records))
	return slices.Clone(records[start:end])
}

// pageRequest converts a zero-based query into the one-based variables of
// the list endpoint.
func (s *Synchronizer[T, I]) pageRequest(q models.Query) (models.PageRequest, error) {
	status, ok := s.schema.StatusValue(q.Status)
	if !ok {
		return models.PageRequest{}, fmt.Errorf("%w for %s: %q", ErrUnknownStatus, s.schema.Name, q.Status)
	}
	sort, err := s.schema.SortInput(q.OrderBy)
	if err != nil {
		return models.PageRequest{}, err
	}

	req := models.PageRequest{
		Page:   q.Page + 1,
		Limit:  models.ClampPageSize(q.PageSize),
		Search: q.EffectiveSearch(),
		Status: status,
		Sort:   sort,
	}
	if s.schema.SupportsPaymentMethod {
		req.PaymentMethod = q.PaymentMethod
	}
	if s.schema.SupportsDateRange {
		req.StartDate, req.EndDate = q.StartDate, q.EndDate
	}
	return req, nil
}
