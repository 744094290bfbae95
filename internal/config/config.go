// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the POS
// client. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the API token, the version and the log location.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote GraphQL endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local mirror database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background refresh settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the paging, caching and refetch pacing settings shared by
	// every entity screen.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// APIToken is sent as a bearer token with every GraphQL request.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// Version is shown in the status bar.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogDir is the directory of the log file; empty means next to the binary.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Adapter holds the remote API settings.
type Adapter struct {
	// HTTPAddress is the API base address, either host:port or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GraphQLPath is the path of the GraphQL endpoint.
	// Env: ADAPTER_GRAPHQL_PATH
	GraphQLPath string `env:"GRAPHQL_PATH"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite mirror database settings.
type DB struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is "sqlite3" (mattn, cgo) or "sqlite" (modernc, pure Go).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Workers holds background worker settings.
type Workers struct {
	// SyncInterval is how often the active query of every screen is refetched.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Sync holds the synchronizer settings.
type Sync struct {
	PageSize        int           `env:"PAGE_SIZE"`
	PageCacheSize   int           `env:"PAGE_CACHE_SIZE"`
	SearchDebounce  time.Duration `env:"SEARCH_DEBOUNCE"`
	RefetchThrottle time.Duration `env:"REFETCH_THROTTLE"`
	// MirrorReadCap bounds the mirror after fetches and updates,
	// MirrorCreateCap after creates.
	MirrorReadCap   int `env:"MIRROR_READ_CAP"`
	MirrorCreateCap int `env:"MIRROR_CREATE_CAP"`
	// LowStockThreshold is the stock level under which the report lists a product.
	LowStockThreshold int64 `env:"LOW_STOCK_THRESHOLD"`
}

// Default values applied before any other source.
const (
	DefaultHTTPAddress       = "localhost:3000"
	DefaultGraphQLPath       = "/graphql"
	DefaultRequestTimeout    = 10 * time.Second
	DefaultDSN               = "pos-client.db"
	DriverSQLite3            = "sqlite3"
	DriverSQLite             = "sqlite"
	DefaultSyncInterval      = time.Minute
	DefaultPageSize          = 10
	DefaultPageCacheSize     = 10
	DefaultSearchDebounce    = 400 * time.Millisecond
	DefaultRefetchThrottle   = 1000 * time.Millisecond
	DefaultMirrorReadCap     = 100
	DefaultMirrorCreateCap   = 5000
	DefaultLowStockThreshold = 5
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			GraphQLPath:    DefaultGraphQLPath,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN, Driver: DriverSQLite3}},
		Workers: Workers{SyncInterval: DefaultSyncInterval},
		Sync: Sync{
			PageSize:          DefaultPageSize,
			PageCacheSize:     DefaultPageCacheSize,
			SearchDebounce:    DefaultSearchDebounce,
			RefetchThrottle:   DefaultRefetchThrottle,
			MirrorReadCap:     DefaultMirrorReadCap,
			MirrorCreateCap:   DefaultMirrorCreateCap,
			LowStockThreshold: DefaultLowStockThreshold,
		},
	}
}

// GetStructuredConfig loads and merges the configuration in the following
// priority order (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
