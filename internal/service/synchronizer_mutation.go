package service

import (
	"context"
	"fmt"
)

// Create sends input to the remote API and puts the created record in
// front of page 0, which becomes the active page. The remaining cached
// pages are dropped because their offsets shifted.
func (s *Synchronizer[T, I]) Create(ctx context.Context, input I) (T, error) {
	var zero T
	if s.isClosed() {
		return zero, ErrClosed
	}
	if err := s.inputValidator.Validate(ctx, input); err != nil {
		return zero, err
	}

	created, err := s.remote.Create(ctx, input)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", s.schema.Entity, mapAdapterError(err))
	}

	s.mu.Lock()
	first, _ := s.cache.Get(0)
	limit := s.query.PageSize
	s.epoch++
	s.cache.InvalidateAll()
	clear(s.degraded)
	s.cache.Set(0, first)
	s.cache.Prepend(0, created, limit)
	s.query.Page = 0
	s.total++
	s.lastErr = nil
	s.mu.Unlock()

	s.persist(ctx, created, s.opts.MirrorCreateCap)
	s.notify()

	s.logger.Info().
		Str("func", "Synchronizer.Create").
		Int64("id", created.EntityID()).
		Msg("record created")
	return created, nil
}

// Update sends input to the remote API and replaces the record in
// whichever cached page holds it. Pages that do not hold it stay as they
// are.
func (s *Synchronizer[T, I]) Update(ctx context.Context, id int64, input I) (T, error) {
	var zero T
	if s.isClosed() {
		return zero, ErrClosed
	}
	if err := s.inputValidator.Validate(ctx, id); err != nil {
		return zero, err
	}
	if err := s.inputValidator.Validate(ctx, input); err != nil {
		return zero, err
	}

	updated, err := s.remote.Update(ctx, id, input)
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", s.schema.Entity, id, mapAdapterError(err))
	}

	s.mu.Lock()
	page, patched := s.cache.ReplaceRecord(updated)
	s.mu.Unlock()

	s.persist(ctx, updated, s.opts.MirrorReadCap)
	s.notify()

	s.logger.Info().
		Str("func", "Synchronizer.Update").
		Int64("id", id).
		Bool("cached", patched).
		Int("page", page).
		Msg("record updated")
	return updated, nil
}

// Delete removes the record on the remote API, then from the active page
// and the mirror. The total is decremented and never goes below zero.
func (s *Synchronizer[T, I]) Delete(ctx context.Context, id int64) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.inputValidator.Validate(ctx, id); err != nil {
		return err
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", s.schema.Entity, id, mapAdapterError(err))
	}

	s.mu.Lock()
	s.cache.PatchRecord(s.query.Page, id, nil)
	s.total = max(s.total-1, 0)
	s.mu.Unlock()

	if err := s.mirror.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).
			Str("func", "Synchronizer.Delete").
			Int64("id", id).
			Msg("local mirror delete failed")
	}
	s.notify()

	s.logger.Info().
		Str("func", "Synchronizer.Delete").
		Int64("id", id).
		Msg("record deleted")
	return nil
}

func (s *Synchronizer[T, I]) persist(ctx context.Context, record T, maxKeep int) {
	if err := s.mirror.Upsert(ctx, record); err != nil {
		s.logger.Error().Err(err).
			Str("func", "Synchronizer.persist").
			Int64("id", record.EntityID()).
			Msg("local mirror write-through failed")
		return
	}
	s.evict(ctx, maxKeep)
}
