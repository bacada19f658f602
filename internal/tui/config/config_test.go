package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsDevelopment(t *testing.T) {
	cfg := Default()

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default().API.TrendBaseURL, cfg.API.TrendBaseURL)
	assert.Equal(t, 300, cfg.UI.DebounceMs)
}

func TestLoadParsesFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.yaml")
	content := `environment: development
api:
  trend_base_url: http://trend.internal/api
  search_base_url: http://search.internal/api
  report_base_url: http://report.internal/api
ui:
  page_size: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("TRENDHUB_SEARCH_API_URL", "https://search.example.com/api")
	t.Setenv("TRENDHUB_API_KEY", "from-env")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "http://trend.internal/api", cfg.API.TrendBaseURL)
	assert.Equal(t, "https://search.example.com/api", cfg.API.SearchBaseURL)
	assert.Equal(t, "from-env", cfg.API.Key)
	assert.Equal(t, 25, cfg.UI.PageSize)
}

func TestValidateProductionRejectsMissingURL(t *testing.T) {
	cfg := Default()
	cfg.Environment = EnvProduction
	cfg.API.TrendBaseURL = "https://trend.example.com/api"
	cfg.API.SearchBaseURL = ""
	cfg.API.ReportBaseURL = "https://report.example.com/api"

	err := cfg.Validate()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBaseURL))
	assert.Contains(t, err.Error(), "search")
}

func TestValidateProductionRejectsLoopback(t *testing.T) {
	tests := []string{
		"http://localhost:8080/api",
		"http://127.0.0.1/api",
		"http://[::1]:9000/api",
	}
	for _, baseURL := range tests {
		cfg := Default()
		cfg.Environment = EnvProduction
		cfg.API.TrendBaseURL = "https://trend.example.com/api"
		cfg.API.SearchBaseURL = "https://search.example.com/api"
		cfg.API.ReportBaseURL = baseURL

		err := cfg.Validate()

		require.Error(t, err, baseURL)
		assert.True(t, errors.Is(err, ErrLoopbackBaseURL), baseURL)
	}
}

func TestValidateProductionAcceptsPublicHosts(t *testing.T) {
	cfg := Default()
	cfg.Environment = EnvProduction
	cfg.API.TrendBaseURL = "https://trend.example.com/api"
	cfg.API.SearchBaseURL = "https://search.example.com/api"
	cfg.API.ReportBaseURL = "https://report.example.com/api"

	assert.NoError(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tui.yaml")
	cfg := Default()
	cfg.API.Key = "saved-key"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.API.Key)
}
