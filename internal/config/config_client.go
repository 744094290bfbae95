package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	APIToken string
	Version  string
	LogDir   string
}

// ClientAdapter holds the remote API settings used by the adapter layer.
type ClientAdapter struct {
	HTTPAddress    string
	GraphQLPath    string
	RequestTimeout time.Duration
}

// ClientDB contains local mirror database settings.
type ClientDB struct {
	DSN    string
	Driver string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientSync contains the synchronizer settings shared by every entity.
type ClientSync struct {
	PageSize          int
	PageCacheSize     int
	SearchDebounce    time.Duration
	RefetchThrottle   time.Duration
	MirrorReadCap     int
	MirrorCreateCap   int
	LowStockThreshold int64
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
}

// GetClientConfig builds the merged configuration from args and the
// environment, maps it to [ClientConfig] and validates the result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			APIToken: cfg.App.APIToken,
			Version:  cfg.App.Version,
			LogDir:   cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GraphQLPath:    cfg.Adapter.GraphQLPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:    cfg.Storage.DB.DSN,
				Driver: cfg.Storage.DB.Driver,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Sync: ClientSync{
			PageSize:          cfg.Sync.PageSize,
			PageCacheSize:     cfg.Sync.PageCacheSize,
			SearchDebounce:    cfg.Sync.SearchDebounce,
			RefetchThrottle:   cfg.Sync.RefetchThrottle,
			MirrorReadCap:     cfg.Sync.MirrorReadCap,
			MirrorCreateCap:   cfg.Sync.MirrorCreateCap,
			LowStockThreshold: cfg.Sync.LowStockThreshold,
		},
	}
}
