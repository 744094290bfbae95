package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pos-client/internal/config"
	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.ClientApp{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.ClientApp{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	build := models.NewAppBuildInfo("v0.9.0", "2026-10-01", "abc123")

	svc, err := NewAppInfoService(config.ClientApp{}, build, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v0.9.0", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ConfiguredVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("v0.9.0", "2026-10-01", "abc123")
	svc, err := NewAppInfoService(config.ClientApp{Version: "3.1.4"}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_VersionWithSpecialChars(t *testing.T) {
	version := "v1.2.3-beta+build.42"
	svc, err := NewAppInfoService(config.ClientApp{Version: version}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, version, svc.GetAppVersion(context.Background()))
}

func TestGetBuildInfo_ReturnsInjectedInfo(t *testing.T) {
	build := models.NewAppBuildInfo("v1.0.0", "2026-10-18", "deadbeef")
	svc, err := NewAppInfoService(config.ClientApp{Version: "1.0.0"}, build, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "deadbeef", got.BuildCommit())
	assert.Equal(t, "2026-10-18", got.BuildDate())
	assert.Equal(t, "v1.0.0 (deadbeef, 2026-10-18)", got.String())
}
