package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win and zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Sync: Sync{PageSize: 25}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, 25, cfg.Sync.PageSize)
	assert.Equal(t, DefaultPageCacheSize, cfg.Sync.PageCacheSize)
	assert.Equal(t, DefaultSearchDebounce, cfg.Sync.SearchDebounce)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "env-version"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-page-size", "many"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	last := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "last"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: last},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last", b.configs[2].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig / GetClientConfig ────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"sync": map[string]any{"page_size": 40},
	})
	setEnvVars(t, map[string]string{
		"SYNC_PAGE_SIZE":  "20",
		"APP_VERSION":     "from-env",
		"ADAPTER_ADDRESS": "localhost:4000",
	})

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:5000", "-page-size", "30", "-c", jsonPath})
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Sync.PageSize, "json wins over flags and env")
	assert.Equal(t, "127.0.0.1:5000", cfg.Adapter.HTTPAddress, "flags win over env")
	assert.Equal(t, "from-env", cfg.App.Version, "env wins over defaults")
	assert.Equal(t, DefaultMirrorCreateCap, cfg.Sync.MirrorCreateCap)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite3, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultRefetchThrottle, cfg.Sync.RefetchThrottle)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *ClientConfig) { c.Storage.DB.Driver = "postgres" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "relative graphql path", mutate: func(c *ClientConfig) { c.Adapter.GraphQLPath = "graphql" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no sync interval", mutate: func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "page size too small", mutate: func(c *ClientConfig) { c.Sync.PageSize = 5 }, wantErr: ErrInvalidSyncConfigs},
		{name: "page size too large", mutate: func(c *ClientConfig) { c.Sync.PageSize = 101 }, wantErr: ErrInvalidSyncConfigs},
		{name: "zero cache size", mutate: func(c *ClientConfig) { c.Sync.PageCacheSize = 0 }, wantErr: ErrInvalidSyncConfigs},
		{name: "create cap below read cap", mutate: func(c *ClientConfig) { c.Sync.MirrorCreateCap = 10 }, wantErr: ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
