package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ZOOMDL_API_KEY", "key")
	t.Setenv("ZOOMDL_API_SECRET", "secret")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "secret", cfg.APISecret)
	assert.Equal(t, "https://api.zoom.us/v2", cfg.BaseURL)
	assert.Equal(t, 300, cfg.PageSize)
	assert.Equal(t, "downloads", cfg.DownloadDir)
	assert.Equal(t, "completed_downloads.txt", cfg.LedgerPath)
	assert.Equal(t, 4*time.Second, cfg.TokenTTL)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
}

func TestNew_MissingKeyIsFatal(t *testing.T) {
	// Present-but-empty must be as fatal as absent: a blank .env entry still
	// sets the variable, so the check cannot rely on envconfig's required tag.
	t.Setenv("ZOOMDL_API_KEY", "")
	t.Setenv("ZOOMDL_API_SECRET", "secret")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZOOMDL_API_KEY")
}

func TestNew_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("ZOOMDL_API_KEY", "key")
	t.Setenv("ZOOMDL_API_SECRET", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZOOMDL_API_SECRET")
}

func TestNew_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ZOOMDL_BASE_URL", "http://localhost:8081/v2")
	t.Setenv("ZOOMDL_PAGE_SIZE", "50")
	t.Setenv("ZOOMDL_DOWNLOAD_DIR", "/tmp/recordings")
	t.Setenv("ZOOMDL_TOKEN_TTL", "30s")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081/v2", cfg.BaseURL)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "/tmp/recordings", cfg.DownloadDir)
	assert.Equal(t, 30*time.Second, cfg.TokenTTL)
}

func TestNew_RejectsBadPageSize(t *testing.T) {
	setRequired(t)
	t.Setenv("ZOOMDL_PAGE_SIZE", "0")

	_, err := New()
	require.Error(t, err)
}
