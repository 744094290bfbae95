package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		APIToken string `json:"api_token"`
		Version  string `json:"version"`
		LogDir   string `json:"log_dir"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GraphQLPath    string   `json:"graphql_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Sync struct {
		PageSize          int      `json:"page_size"`
		PageCacheSize     int      `json:"page_cache_size"`
		SearchDebounce    Duration `json:"search_debounce"`
		RefetchThrottle   Duration `json:"refetch_throttle"`
		MirrorReadCap     int      `json:"mirror_read_cap"`
		MirrorCreateCap   int      `json:"mirror_create_cap"`
		LowStockThreshold int64    `json:"low_stock_threshold"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIToken: jsonCfg.App.APIToken,
			Version:  jsonCfg.App.Version,
			LogDir:   jsonCfg.App.LogDir,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GraphQLPath:    jsonCfg.Adapter.GraphQLPath,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Workers: Workers{SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval)},
		Sync: Sync{
			PageSize:          jsonCfg.Sync.PageSize,
			PageCacheSize:     jsonCfg.Sync.PageCacheSize,
			SearchDebounce:    time.Duration(jsonCfg.Sync.SearchDebounce),
			RefetchThrottle:   time.Duration(jsonCfg.Sync.RefetchThrottle),
			MirrorReadCap:     jsonCfg.Sync.MirrorReadCap,
			MirrorCreateCap:   jsonCfg.Sync.MirrorCreateCap,
			LowStockThreshold: jsonCfg.Sync.LowStockThreshold,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
