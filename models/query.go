package models

import (
	"fmt"
	"slices"
	"strings"
)

// Page size bounds accepted by the list endpoints.
const (
	MinPageSize     = 10
	MaxPageSize     = 100
	DefaultPageSize = 10
)

// StatusAll is the UI label that disables status filtering.
const StatusAll = "All"

// Query is the full configuration of one list screen. Page is zero-based;
// every other field selects which records exist and in which order, so a
// change to any of them invalidates every cached page.
type Query struct {
	Page     int
	PageSize int

	// Search is the debounced free-text search term.
	Search string
	// Filters maps a column name to a per-column search term.
	Filters map[string]string
	// Status is the UI label of the active status filter, e.g. "Pending Payments".
	Status        string
	PaymentMethod string
	StartDate     string
	EndDate       string
	// OrderBy uses AIP-132 syntax, e.g. "created_at desc".
	OrderBy string
}

// NewQuery returns the first page with the given page size and no filters.
func NewQuery(pageSize int) Query {
	return Query{PageSize: ClampPageSize(pageSize), Status: StatusAll}
}

// ClampPageSize forces size into [MinPageSize, MaxPageSize].
func ClampPageSize(size int) int {
	switch {
	case size < MinPageSize:
		return MinPageSize
	case size > MaxPageSize:
		return MaxPageSize
	default:
		return size
	}
}

// Key renders every field except Page. Two queries with different keys
// address different record sets.
func (q Query) Key() string {
	status := q.Status
	if status == StatusAll {
		status = ""
	}
	return fmt.Sprintf("size=%d|search=%s|status=%s|pay=%s|from=%s|to=%s|order=%s",
		q.PageSize, q.EffectiveSearch(), status, q.PaymentMethod, q.StartDate, q.EndDate, strings.TrimSpace(q.OrderBy))
}

// EffectiveSearch joins the search term with the column filters in
// column-name order. Empty terms are skipped.
func (q Query) EffectiveSearch() string {
	terms := make([]string, 0, len(q.Filters)+1)
	if s := strings.TrimSpace(q.Search); s != "" {
		terms = append(terms, s)
	}
	columns := make([]string, 0, len(q.Filters))
	for column := range q.Filters {
		columns = append(columns, column)
	}
	slices.Sort(columns)
	for _, column := range columns {
		if v := strings.TrimSpace(q.Filters[column]); v != "" {
			terms = append(terms, v)
		}
	}
	return strings.Join(terms, " ")
}

// Offset returns the index of the first record of the page.
func (q Query) Offset() int {
	return q.Page * q.PageSize
}

// SortInput is the wire form of a single sort key.
type SortInput struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// Sort directions understood by the server.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PageRequest is the variables object of a paginated list query.
// Page is one-based here.
type PageRequest struct {
	Page          int        `json:"page"`
	Limit         int        `json:"limit"`
	Search        string     `json:"search,omitempty"`
	Status        string     `json:"status,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	StartDate     string     `json:"startDate,omitempty"`
	EndDate       string     `json:"endDate,omitempty"`
	Sort          *SortInput `json:"sort,omitempty"`
}
