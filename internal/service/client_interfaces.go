package service

import (
	"context"

	"github.com/MKhiriev/go-pos-client/models"
)

// EntityList is the entity-independent part of a Synchronizer, used by code
// that treats every list screen alike (warm-up, periodic refresh, shutdown).
type EntityList interface {
	// Schema describes the entity served by the list.
	Schema() models.EntitySchema

	// Refresh refetches the active page of the list. A remote failure that
	// was recovered from the local mirror is not an error.
	Refresh(ctx context.Context) error

	// Close stops the background fetches of the list and waits for them.
	Close()
}

// EntitySync is the full contract of one list screen over entity T with
// mutation input I. It is implemented by *Synchronizer.
type EntitySync[T models.Entity, I any] interface {
	EntityList

	// Query returns a copy of the active query.
	Query() models.Query
	// View returns the records of the active page and their origin.
	View() models.PageView[T]
	// Updates delivers the newest view after every change.
	Updates() <-chan models.PageView[T]

	SetSearch(term string)
	SetColumnFilters(filters map[string]string)
	SetStatus(label string) error
	SetPaymentMethod(method string) error
	SetDateRange(start, end string) error
	SetSort(orderBy string) error
	SetPage(page int) error
	SetPageSize(size int)

	// FetchPage loads one page of q, from the mirror if the remote call
	// fails.
	FetchPage(ctx context.Context, q models.Query) (models.PageView[T], error)

	// Create, Update and Delete reach the remote API first. On success the
	// cached pages and the local mirror are patched without a refetch; on
	// failure nothing local changes.
	Create(ctx context.Context, input I) (T, error)
	Update(ctx context.Context, id int64, input I) (T, error)
	Delete(ctx context.Context, id int64) error
}

// ReportService computes dashboards from the local mirrors only, so it
// works offline.
type ReportService interface {
	Summary(ctx context.Context) (models.Summary, error)
}

// AppInfoService exposes build metadata of the running client.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
