package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// HELIUS_PROVIDER is the rate limiter provider name for the Helius API
	HELIUS_PROVIDER = "helius"
	// SOLANA_RPC_PROVIDER is the rate limiter provider name for Solana JSON-RPC
	SOLANA_RPC_PROVIDER = "solana-rpc"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
	APIKeysPath  string   `mapstructure:"api_keys_path"` // optional JSON file of extra keys
}

// HeliusConfig holds the sales/events data source configuration
type HeliusConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SolanaConfig holds the on-chain royalty state configuration
type SolanaConfig struct {
	RPCURL           string `mapstructure:"rpc_url"`
	RoyaltyProgramID string `mapstructure:"royalty_program_id"`
}

// RedisConfig holds Redis connection settings shared by the cache and the rate limiter
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig holds the limit for a single upstream provider
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds configuration for the upstream rate limiting proxy
type RateLimiterConfig struct {
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// CacheConfig holds cache TTLs
type CacheConfig struct {
	MetadataTTL time.Duration `mapstructure:"metadata_ttl"`
}

// CheckerConfig holds batching limits of the check endpoints
type CheckerConfig struct {
	Concurrency      int `mapstructure:"concurrency"`
	BatchSize        int `mapstructure:"batch_size"`
	CheckPageSize    int `mapstructure:"check_page_size"`
	UnlistedPageSize int `mapstructure:"unlisted_page_size"`
}

// ReportConfig holds royalty breakdown settings
type ReportConfig struct {
	Days                   int `mapstructure:"days"`
	OutstandingBasisPoints int `mapstructure:"outstanding_basis_points"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Helius      HeliusConfig      `mapstructure:"helius"`
	Solana      SolanaConfig      `mapstructure:"solana"`
	Redis       RedisConfig       `mapstructure:"redis"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Checker     CheckerConfig     `mapstructure:"checker"`
	Report      ReportConfig      `mapstructure:"report"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("helius.api_url", "https://api.helius.xyz")
	v.SetDefault("helius.timeout", "30s")
	v.SetDefault("solana.rpc_url", "https://api.mainnet-beta.solana.com")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rate_limiter.redis_key_prefix", "royalty-checker:limiter:")
	v.SetDefault("rate_limiter.max_queue_size", 10000)
	v.SetDefault("rate_limiter.enable_local_fallback", true)
	v.SetDefault("rate_limiter.local_fallback_multiplier", 0.5)
	v.SetDefault("rate_limiter.providers."+HELIUS_PROVIDER+".requests_per_second", 10)
	v.SetDefault("rate_limiter.providers."+HELIUS_PROVIDER+".burst", 10)
	v.SetDefault("rate_limiter.providers."+HELIUS_PROVIDER+".max_queue_time", "1m")
	v.SetDefault("rate_limiter.providers."+SOLANA_RPC_PROVIDER+".requests_per_second", 20)
	v.SetDefault("rate_limiter.providers."+SOLANA_RPC_PROVIDER+".burst", 20)
	v.SetDefault("rate_limiter.providers."+SOLANA_RPC_PROVIDER+".max_queue_time", "1m")
	v.SetDefault("cache.metadata_ttl", "10m")
	v.SetDefault("checker.concurrency", 10)
	v.SetDefault("checker.batch_size", 100)
	v.SetDefault("checker.check_page_size", 10)
	v.SetDefault("checker.unlisted_page_size", 100)
	v.SetDefault("report.days", 30)
	v.SetDefault("report.outstanding_basis_points", 750)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks the settings the checker cannot run without
func (c *APIConfig) Validate() error {
	if c.Helius.APIKey == "" {
		return fmt.Errorf("helius.api_key is required")
	}
	if c.Solana.RoyaltyProgramID == "" {
		return fmt.Errorf("solana.royalty_program_id is required")
	}
	if _, err := solana.PublicKeyFromBase58(c.Solana.RoyaltyProgramID); err != nil {
		return fmt.Errorf("solana.royalty_program_id is not a valid public key: %w", err)
	}
	if c.Checker.BatchSize <= 0 || c.Checker.CheckPageSize <= 0 || c.Checker.UnlistedPageSize <= 0 {
		return fmt.Errorf("checker batch and page sizes must be positive")
	}
	if c.Report.Days <= 0 {
		return fmt.Errorf("report.days must be positive")
	}
	return nil
}

// RoyaltyProgramID returns the parsed royalty repayment program id.
// Validate must have succeeded first.
func (c *APIConfig) RoyaltyProgramID() solana.PublicKey {
	return solana.MustPublicKeyFromBase58(c.Solana.RoyaltyProgramID)
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("ROYALTY_CHECKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		"auth.api_keys_path",
		// Helius
		"helius.api_url",
		"helius.api_key",
		"helius.timeout",
		// Solana
		"solana.rpc_url",
		"solana.royalty_program_id",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Rate limiter
		"rate_limiter.redis_key_prefix",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
		// Cache
		"cache.metadata_ttl",
		// Checker
		"checker.concurrency",
		"checker.batch_size",
		"checker.check_page_size",
		"checker.unlisted_page_size",
		// Report
		"report.days",
		"report.outstanding_basis_points",
	}

	for _, provider := range []string{HELIUS_PROVIDER, SOLANA_RPC_PROVIDER} {
		prefix := "rate_limiter.providers." + provider
		keys = append(keys,
			prefix+".requests_per_second",
			prefix+".burst",
			prefix+".max_queue_time",
		)
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
