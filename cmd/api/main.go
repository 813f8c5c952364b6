package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/api/middleware"
	"github.com/royaltyguard/royalty-checker/internal/api/server"
	"github.com/royaltyguard/royalty-checker/internal/api/shared/executor"
	"github.com/royaltyguard/royalty-checker/internal/cache"
	"github.com/royaltyguard/royalty-checker/internal/config"
	"github.com/royaltyguard/royalty-checker/internal/delisting"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/pagination"
	"github.com/royaltyguard/royalty-checker/internal/providers/helius"
	"github.com/royaltyguard/royalty-checker/internal/providers/royaltystate"
	"github.com/royaltyguard/royalty-checker/internal/ratelimit"
	"github.com/royaltyguard/royalty-checker/internal/reconcile"
	"github.com/royaltyguard/royalty-checker/internal/registry"
	"github.com/royaltyguard/royalty-checker/internal/repayment"
	"github.com/royaltyguard/royalty-checker/internal/report"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "royalty-checker-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting royalty checker API")

	// Initialize adapters
	clock := adapter.NewClock()
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Helius.Timeout)
	solanaClient := adapter.NewSolanaClient(cfg.Solana.RPCURL)
	defer func() { _ = solanaClient.Close() }()

	// Redis is optional: without it the rate limiter runs locally and metadata is not cached
	var redisClient adapter.RedisClient
	var limiterRedis adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() { _ = redisClient.Close() }()
		// The proxy closes its own connection on shutdown
		limiterRedis = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		logger.InfoCtx(ctx, "Using Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.WarnCtx(ctx, "Redis not configured, using local rate limiting without metadata cache")
	}

	proxy, err := ratelimit.NewProxy(cfg.RateLimiter, limiterRedis, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() { _ = proxy.Close() }()

	// Data sources
	heliusClient := helius.NewClient(httpClient, proxy, cfg.Helius.APIURL, cfg.Helius.APIKey, jsonAdapter)
	if redisClient != nil {
		metadataCache := cache.NewRedisCache(redisClient, jsonAdapter, "royalty-checker:cache:")
		heliusClient = helius.NewCachingClient(heliusClient, metadataCache, cfg.Cache.MetadataTTL)
	}
	programID := cfg.RoyaltyProgramID()
	stateClient := royaltystate.NewClient(solanaClient, proxy, programID)

	// Engines
	engine := reconcile.NewEngine(repayment.NewResolver(stateClient, programID), cfg.Checker.Concurrency)
	defer engine.Close()
	classifier := delisting.NewClassifier(clock)
	codec := pagination.NewCodec(jsonAdapter, adapter.NewBase64())
	reporter := report.NewReporter(heliusClient, clock, programID, cfg.Report.Days, cfg.Report.OutstandingBasisPoints)

	// Load API credentials
	credentials, err := registry.NewCredentialRegistryLoader(fs, jsonAdapter).Load(cfg.Auth.APIKeysPath, cfg.Auth.APIKeys)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load API keys",
			zap.Error(err),
			zap.String("path", cfg.Auth.APIKeysPath))
	}
	if credentials.Len() == 0 && cfg.Auth.JWTPublicKey == "" {
		logger.WarnCtx(ctx, "No API keys or JWT public key configured, /api/v1 endpoints will reject every request")
	}
	logger.InfoCtx(ctx, "Loaded API credentials", zap.Int("api_keys", credentials.Len()))

	exec := executor.NewExecutor(heliusClient, engine, classifier, codec, reporter, cfg.Checker)
	defer exec.Close()

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			Credentials:  credentials,
		},
	}

	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}
