package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"app": {"api_token": "tok", "version": "2.0.0", "log_dir": "/logs"},
		"adapter": {"http_address": "https://pos.example.com", "graphql_path": "/graphql", "request_timeout": "15s"},
		"storage": {"db": {"dsn": "/data/pos.db", "driver": "sqlite3"}},
		"workers": {"sync_interval": "90s"},
		"sync": {
			"page_size": 20,
			"page_cache_size": 10,
			"search_debounce": "400ms",
			"refetch_throttle": "1s",
			"mirror_read_cap": 100,
			"mirror_create_cap": 5000,
			"low_stock_threshold": 4
		}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "tok", cfg.App.APIToken)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "https://pos.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/pos.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 90*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 20, cfg.Sync.PageSize)
	assert.Equal(t, 400*time.Millisecond, cfg.Sync.SearchDebounce)
	assert.Equal(t, time.Second, cfg.Sync.RefetchThrottle)
	assert.Equal(t, 5000, cfg.Sync.MirrorCreateCap)
	assert.Equal(t, int64(4), cfg.Sync.LowStockThreshold)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{"app": `))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"sync": {"search_debounce": "quickly"}}`))
	assert.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{"workers": {"sync_interval": 1000000000}}`))
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.SyncInterval)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}
