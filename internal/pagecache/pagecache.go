// Package pagecache keeps the pages of one list query in memory.
//
// The cache is bounded by a number of page indices. When the bound is
// exceeded the numerically smallest page indices are evicted first,
// regardless of when they were inserted or read. The cache is not safe for
// concurrent use; its owner serializes access.
package pagecache

import (
	"slices"

	"github.com/MKhiriev/go-pos-client/models"
)

// DefaultMaxPages is the number of page indices retained by default.
const DefaultMaxPages = 10

// Cache maps a zero-based page index to the records of that page.
type Cache[T models.Entity] struct {
	pages    map[int][]T
	maxPages int
}

// New returns an empty cache holding at most maxPages page indices.
// A non-positive maxPages selects DefaultMaxPages.
func New[T models.Entity](maxPages int) *Cache[T] {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Cache[T]{
		pages:    make(map[int][]T, maxPages+1),
		maxPages: maxPages,
	}
}

// Get returns the records of page. ok is false when the page was never
// stored under the current query or has been evicted.
func (c *Cache[T]) Get(page int) (records []T, ok bool) {
	records, ok = c.pages[page]
	if !ok {
		return nil, false
	}
	return slices.Clone(records), true
}

// Set stores records at page, replacing any previous value, then evicts
// the smallest page indices until the bound holds.
func (c *Cache[T]) Set(page int, records []T) {
	c.pages[page] = slices.Clone(records)
	c.evict()
}

func (c *Cache[T]) evict() {
	if len(c.pages) <= c.maxPages {
		return
	}
	keys := c.Keys()
	for _, k := range keys[:len(keys)-c.maxPages] {
		delete(c.pages, k)
	}
}

// InvalidateAll drops every page.
func (c *Cache[T]) InvalidateAll() {
	clear(c.pages)
}

// PatchRecord replaces the record with id in page by replacement, or removes
// it when replacement is nil. It reports whether the page changed.
func (c *Cache[T]) PatchRecord(page int, id int64, replacement *T) bool {
	records, ok := c.pages[page]
	if !ok {
		return false
	}
	i := slices.IndexFunc(records, func(r T) bool { return r.EntityID() == id })
	if i < 0 {
		return false
	}
	if replacement == nil {
		c.pages[page] = slices.Delete(slices.Clone(records), i, i+1)
		return true
	}
	patched := slices.Clone(records)
	patched[i] = *replacement
	c.pages[page] = patched
	return true
}

// ReplaceRecord replaces the record with the same id in whichever cached
// page holds it. It returns the page index and whether a page was patched.
func (c *Cache[T]) ReplaceRecord(record T) (page int, ok bool) {
	for _, k := range c.Keys() {
		if c.PatchRecord(k, record.EntityID(), &record) {
			return k, true
		}
	}
	return 0, false
}

// Prepend stores record in front of the current content of page, keeping
// at most limit records.
func (c *Cache[T]) Prepend(page int, record T, limit int) {
	old := c.pages[page]
	records := make([]T, 0, len(old)+1)
	records = append(records, record)
	records = append(records, old...)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	c.Set(page, records)
}

// Keys returns the cached page indices in ascending order.
func (c *Cache[T]) Keys() []int {
	keys := make([]int, 0, len(c.pages))
	for k := range c.pages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of cached pages.
func (c *Cache[T]) Len() int {
	return len(c.pages)
}
