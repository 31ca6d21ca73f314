package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FARM_API_BASE_URL", "https://api.example.test")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://api.example.test", cfg.Upstream.BaseURL)
	assert.Equal(t, "0 6 * * *", cfg.Reporting.CronSchedule)
	assert.Equal(t, "Africa/Conakry", cfg.Reporting.Timezone)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "herdsman", cfg.MongoDB.DBName)
	assert.Empty(t, cfg.Sheets.CredentialsPath)
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REPORT_CRON_SCHEDULE", "30 5 * * *")
	t.Setenv("FARM_API_SERVICE_TOKEN", "svc-token")
	t.Setenv("FARM_ID", "farm-9")
	t.Setenv("FARM_NAME", "Labe Annex")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "30 5 * * *", cfg.Reporting.CronSchedule)
	assert.Equal(t, "svc-token", cfg.Session.ServiceToken)
	assert.Equal(t, "farm-9", cfg.Session.FarmID)
	assert.Equal(t, "Labe Annex", cfg.Session.FarmName)
}

func TestLoadRequiresUpstreamBaseURL(t *testing.T) {
	t.Setenv("FARM_API_BASE_URL", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARM_API_BASE_URL")
}

func TestValidateSheetsPairing(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/etc/creds.json")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SHEET_REPORT_ID")

	t.Setenv("GOOGLE_SHEET_REPORT_ID", "sheet-1")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sheet-1", cfg.Sheets.SpreadsheetID)
}

func TestValidateServiceTokenNeedsFarm(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("FARM_API_SERVICE_TOKEN", "svc-token")
	t.Setenv("FARM_ID", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARM_ID")
}
