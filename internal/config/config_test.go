package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError string
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
auth:
  api_keys: ["key-1", "key-2"]
  api_keys_path: "config/api_keys.json"
helius:
  api_url: "https://helius.example.com"
  api_key: "helius-key"
  timeout: "5s"
solana:
  rpc_url: "https://rpc.example.com"
  royalty_program_id: "` + testProgramID + `"
redis:
  addr: "localhost:6379"
  db: 2
rate_limiter:
  max_workers: 8
  providers:
    helius:
      requests_per_second: 50
      burst: 60
checker:
  concurrency: 4
  check_page_size: 25
report:
  days: 7
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.Equal(t, "config/api_keys.json", cfg.Auth.APIKeysPath)
				assert.Equal(t, "https://helius.example.com", cfg.Helius.APIURL)
				assert.Equal(t, "helius-key", cfg.Helius.APIKey)
				assert.Equal(t, 5*time.Second, cfg.Helius.Timeout)
				assert.Equal(t, "https://rpc.example.com", cfg.Solana.RPCURL)
				assert.Equal(t, testProgramID, cfg.RoyaltyProgramID().String())
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, 8, cfg.RateLimiter.MaxWorkers)
				assert.Equal(t, 50, cfg.RateLimiter.Providers[HELIUS_PROVIDER].RequestsPerSecond)
				assert.Equal(t, 60, cfg.RateLimiter.Providers[HELIUS_PROVIDER].Burst)
				assert.Equal(t, 20, cfg.RateLimiter.Providers[SOLANA_RPC_PROVIDER].RequestsPerSecond)
				assert.Equal(t, 4, cfg.Checker.Concurrency)
				assert.Equal(t, 25, cfg.Checker.CheckPageSize)
				assert.Equal(t, 7, cfg.Report.Days)
			},
		},
		{
			name: "config with defaults",
			configFile: `
helius:
  api_key: "helius-key"
solana:
  royalty_program_id: "` + testProgramID + `"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "https://api.helius.xyz", cfg.Helius.APIURL)
				assert.Equal(t, 30*time.Second, cfg.Helius.Timeout)
				assert.Equal(t, "royalty-checker:limiter:", cfg.RateLimiter.RedisKeyPrefix)
				assert.True(t, cfg.RateLimiter.EnableLocalFallback)
				assert.Equal(t, 10, cfg.RateLimiter.Providers[HELIUS_PROVIDER].RequestsPerSecond)
				assert.Equal(t, time.Minute, cfg.RateLimiter.Providers[HELIUS_PROVIDER].MaxQueueTime)
				assert.Equal(t, 20, cfg.RateLimiter.Providers[SOLANA_RPC_PROVIDER].RequestsPerSecond)
				assert.Equal(t, 10*time.Minute, cfg.Cache.MetadataTTL)
				assert.Equal(t, 10, cfg.Checker.Concurrency)
				assert.Equal(t, 100, cfg.Checker.BatchSize)
				assert.Equal(t, 10, cfg.Checker.CheckPageSize)
				assert.Equal(t, 100, cfg.Checker.UnlistedPageSize)
				assert.Equal(t, 30, cfg.Report.Days)
				assert.Equal(t, 750, cfg.Report.OutstandingBasisPoints)
			},
		},
		{
			name: "missing helius api key",
			configFile: `
solana:
  royalty_program_id: "` + testProgramID + `"
`,
			expectError: "helius.api_key is required",
		},
		{
			name: "missing program id",
			configFile: `
helius:
  api_key: "helius-key"
`,
			expectError: "solana.royalty_program_id is required",
		},
		{
			name: "invalid program id",
			configFile: `
helius:
  api_key: "helius-key"
solana:
  royalty_program_id: "not-a-key"
`,
			expectError: "not a valid public key",
		},
		{
			name: "invalid value type",
			configFile: `
helius:
  api_key: "helius-key"
server:
  port: invalid
`,
			expectError: "failed to unmarshal config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Viper uses the ROYALTY_CHECKER_ prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `ROYALTY_CHECKER_DEBUG=true
ROYALTY_CHECKER_HELIUS_API_KEY=env-key
ROYALTY_CHECKER_REDIS_ADDR=redis:6379
ROYALTY_CHECKER_CHECKER_BATCH_SIZE=50
ROYALTY_CHECKER_RATE_LIMITER_PROVIDERS_HELIUS_REQUESTS_PER_SECOND=3
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)
	t.Cleanup(func() {
		for _, k := range []string{
			"ROYALTY_CHECKER_DEBUG",
			"ROYALTY_CHECKER_HELIUS_API_KEY",
			"ROYALTY_CHECKER_REDIS_ADDR",
			"ROYALTY_CHECKER_CHECKER_BATCH_SIZE",
			"ROYALTY_CHECKER_RATE_LIMITER_PROVIDERS_HELIUS_REQUESTS_PER_SECOND",
		} {
			_ = os.Unsetenv(k)
		}
	})

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
helius:
  api_key: file-key
solana:
  royalty_program_id: "` + testProgramID + `"
redis:
  addr: file-redis:6379
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// .env values are exported by godotenv.Overload and win over the file
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-key", cfg.Helius.APIKey)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 50, cfg.Checker.BatchSize)
	assert.Equal(t, 3, cfg.RateLimiter.Providers[HELIUS_PROVIDER].RequestsPerSecond)
}
