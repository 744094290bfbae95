package models

// Page is one page of a list endpoint together with the total number of
// records matching the query.
type Page[T Entity] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// PageView is what a list screen renders: the records of the active page
// and where they came from.
type PageView[T Entity] struct {
	Query   Query
	Records []T
	Total   int

	// Loaded is false while the active page has never been fetched under
	// the current query.
	Loaded bool
	// Degraded marks records sliced from the local mirror after the remote
	// fetch failed. Err carries the remote failure.
	Degraded bool
	Err      error

	Epoch uint64
}

// TotalPages returns the number of pages for the view's total, at least 1.
func (v PageView[T]) TotalPages() int {
	size := v.Query.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (v.Total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}
