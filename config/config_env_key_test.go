package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"ranking": map[string]any{
			"distanceWeight": 0.5,
		},
		"catalog": map[string]any{
			"seedUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RANKING_DISTANCEWEIGHT", want: "ranking.distanceWeight"},
		{envKey: "CATALOG_SEEDURL", want: "catalog.seedUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

const testConfigYAML = `
env:
  env: test
  serviceName: lowkey
  timeZone: Asia/Kolkata
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
ranking:
  priceSpan: 50
  distanceWeight: 0.5
  ratingWeight: 3
suggest:
  maxResults: 3
  cutoff: 0.3
`

func TestLoadWithEnv_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lowkey-test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("RANKING_DISTANCEWEIGHT", "1.5")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("lowkey-test")
	require.NoError(t, err)

	assert.Equal(t, "lowkey", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Ranking)
	assert.InDelta(t, 1.5, cfg.Ranking.DistanceWeight, 1e-9)
	assert.InDelta(t, 3.0, cfg.Ranking.RatingWeight, 1e-9)
	require.NotNil(t, cfg.Suggest)
	assert.Equal(t, 3, cfg.Suggest.MaxResults)
	assert.Nil(t, cfg.Catalog)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{}

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Env.TimeZone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}
