// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pos-client/models"
)

//go:generate mockgen -source=mirror_interfaces.go -destination=../mock/mirror_mock.go -package=mock

// MirrorRepository is the persistent local copy of one entity type, keyed
// by the server-assigned id. It is a cache: callers treat its failures as
// non-fatal.
type MirrorRepository[T models.Entity] interface {
	// BulkUpsert inserts or replaces records; the last write wins.
	BulkUpsert(ctx context.Context, records ...T) error
	Upsert(ctx context.Context, record T) error
	Delete(ctx context.Context, id int64) error

	// ScanAll returns every record ordered by id.
	ScanAll(ctx context.Context) ([]T, error)
	// ScanOrderedBy returns up to limit records ordered ascending by field
	// (one of OrderByID, OrderByCreatedAt, OrderBySyncedAt), ties broken by
	// id. A non-positive limit returns every record.
	ScanOrderedBy(ctx context.Context, field string, limit int) ([]T, error)
	Count(ctx context.Context) (int, error)

	// EvictOldest deletes the oldest records by creation time (ties broken
	// by id) until at most maxKeep remain, and returns how many it deleted.
	EvictOldest(ctx context.Context, maxKeep int) (int, error)
}
