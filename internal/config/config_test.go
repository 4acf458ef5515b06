package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/console/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(context.Background(), config.UserPrefix)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIBase)
	assert.Empty(t, cfg.CredentialsPath)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.NonInteractive)
}

func TestLoad_PrefixesAreIndependent(t *testing.T) {
	t.Setenv("PAPERTRADE_API_BASE", "https://api.example.com/v1")
	t.Setenv("PAPERTRADE_ADMIN_API_BASE", "https://admin.example.com/v1")
	t.Setenv("PAPERTRADE_DEBUG", "true")

	userCfg, err := config.Load(context.Background(), config.UserPrefix)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", userCfg.APIBase)
	assert.True(t, userCfg.Debug)

	adminCfg, err := config.Load(context.Background(), config.AdminPrefix)
	require.NoError(t, err)
	assert.Equal(t, "https://admin.example.com/v1", adminCfg.APIBase)
	assert.False(t, adminCfg.Debug)
}
