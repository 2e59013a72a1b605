package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsblocklist/fti/internal/scrapers"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fti.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, ";", cfg.Report.Delimiter)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, scrapers.DefaultSources(), cfg.ScraperSources())
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	t.Setenv("FTI_TEST_MIRROR", "https://mirror.example.com")

	path := writeConfig(t, `
http:
  timeout: 5s
  rps: 0.5
cache:
  enabled: false
sources:
  cbdc: ${FTI_TEST_MIRROR}/cbdc.json
  social_security:
    url: ${FTI_TEST_MIRROR}/social-security
    skip: ["European Union", "World"]
report:
  delimiter: ","
  fields: [code, name, financial_tyranny_index]
logging:
  level: debug
  format: json
aliases:
  "Republic of Korea": KR
blocs:
  "Benelux": [BE, NL, LU]
weights:
  cbdc_status: 0.5
  cash_limit: 0.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 0.5, cfg.HTTP.RPS)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "https://mirror.example.com/cbdc.json", cfg.Sources.CBDC)
	assert.Equal(t, []string{"European Union", "World"}, cfg.Sources.SocialSecurity.Skip)
	assert.Equal(t, []string{"code", "name", "financial_tyranny_index"}, cfg.Report.Fields)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, map[string]string{"Republic of Korea": "KR"}, cfg.Aliases)
	assert.Equal(t, []string{"BE", "NL", "LU"}, cfg.Blocs["Benelux"])
	assert.Equal(t, 0.5, cfg.Weights["cash_limit"])

	// Untouched sections keep their defaults.
	assert.Equal(t, scrapers.DefaultMoneySupplyURL, cfg.Sources.MoneySupply.URL)

	src := cfg.ScraperSources()
	assert.Equal(t, "https://mirror.example.com/social-security", src.SocialSecurity.URL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")
	t.Setenv("FTI_LOGGING_LEVEL", "error")
	t.Setenv("FTI_HTTP_BURST", "4")
	t.Setenv("FTI_REPORT_FIELDS", "code,financial_tyranny_index")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 4, cfg.HTTP.Burst)
	assert.Equal(t, []string{"code", "financial_tyranny_index"}, cfg.Report.Fields)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad level", "logging:\n  level: loud\n"},
		{"zero rps", "http:\n  rps: 0\n"},
		{"cache without path", "cache:\n  enabled: true\n  path: \"\"\n"},
		{"bad url", "sources:\n  cbdc: not a url\n"},
		{"bad bloc code", "blocs:\n  Benelux: [BEL]\n"},
		{"empty bloc", "blocs:\n  Benelux: []\n"},
		{"weight above one", "weights:\n  cbdc_status: 2\n"},
		{"bad yaml", "http: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
