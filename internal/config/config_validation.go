// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pos-client/models"
)

// validate checks the client configuration before start-up. The mirror
// must outlive the process, so in-memory SQLite DSNs are rejected.
func (cfg *ClientConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" || strings.Contains(db.DSN, ":memory:") || strings.Contains(db.DSN, "mode=memory") {
		return fmt.Errorf("%w: dsn %q", ErrInvalidStorageConfigs, db.DSN)
	}
	if db.Driver != DriverSQLite3 && db.Driver != DriverSQLite {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(cfg.Adapter.GraphQLPath, "/") {
		return fmt.Errorf("%w: graphql path must start with /", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	s := cfg.Sync
	switch {
	case s.PageSize < models.MinPageSize || s.PageSize > models.MaxPageSize:
		return fmt.Errorf("%w: page size %d outside [%d, %d]", ErrInvalidSyncConfigs, s.PageSize, models.MinPageSize, models.MaxPageSize)
	case s.PageCacheSize <= 0:
		return fmt.Errorf("%w: page cache size must be positive", ErrInvalidSyncConfigs)
	case s.SearchDebounce < 0 || s.RefetchThrottle < 0:
		return fmt.Errorf("%w: negative delay", ErrInvalidSyncConfigs)
	case s.MirrorReadCap <= 0 || s.MirrorCreateCap < s.MirrorReadCap:
		return fmt.Errorf("%w: mirror caps read=%d create=%d", ErrInvalidSyncConfigs, s.MirrorReadCap, s.MirrorCreateCap)
	}

	return nil
}
