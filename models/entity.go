// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain types shared by every layer of the POS
// client: entity records, their mutation inputs, list queries and pages.
package models

import (
	"strconv"
	"strings"
	"time"
)

// Entity is a record owned by the remote system. Every paginated screen
// works with one concrete Entity type.
type Entity interface {
	// EntityID returns the stable identifier assigned by the server.
	EntityID() int64

	// CreatedTime returns the creation timestamp. Records whose timestamp
	// cannot be parsed report the zero time and sort first.
	CreatedTime() time.Time

	// EntityStatus returns the status string stored next to the record.
	EntityStatus() string
}

// ParseTimestamp accepts RFC 3339 timestamps, plain dates (YYYY-MM-DD)
// and unix milliseconds rendered as a string, which are the three shapes
// the server returns for createdAt depending on the entity.
func ParseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC()
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}
	return time.Time{}
}
