// ABOUTME: Main entry point for the Snapfind API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snapfind-api/api"
	"snapfind-api/api/handlers"
	"snapfind-api/api/middleware"
	"snapfind-api/core/export"
	"snapfind-api/core/extract"
	"snapfind-api/core/interfaces"
	"snapfind-api/core/presenter"
	"snapfind-api/core/preview"
	"snapfind-api/core/provider"
	"snapfind-api/core/search"
	"snapfind-api/core/session"
	"snapfind-api/infrastructure/cache/lru"
	"snapfind-api/infrastructure/cache/memory"
	"snapfind-api/infrastructure/cache/redis"
	"snapfind-api/infrastructure/cache/sqlite"
	"snapfind-api/infrastructure/export/xlsx"
	stdhttp "snapfind-api/infrastructure/http/standard"
	logruslogger "snapfind-api/infrastructure/logger/logrus"
	"snapfind-api/infrastructure/metrics/prometheus"
	"snapfind-api/pkg/config"
	"snapfind-api/pkg/featureflags"
)

// cacheBackend is the selected cache plus its optional lifecycle hooks
type cacheBackend struct {
	cache interfaces.Cache
	stats handlers.StatsProvider
	close func() error
}

func newCache(cfg *config.Config, logger interfaces.Logger) cacheBackend {
	switch cfg.Cache.Type {
	case config.CacheRedis:
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return cacheBackend{cache: redisCache, close: redisCache.Close}

	case config.CacheSQLite:
		sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
				"path":  cfg.Cache.SQLite.Path,
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return cacheBackend{cache: sqliteCache, stats: sqliteCache, close: sqliteCache.Close}

	case config.CacheLRU:
		lruCache, err := lru.NewLRUCache(cfg.Cache.LRU.Size, cfg.Session.TTL)
		if err != nil {
			logger.Error("Failed to create LRU cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using LRU cache", map[string]interface{}{
			"size": cfg.Cache.LRU.Size,
		})
		return cacheBackend{cache: lruCache}
	}

	logger.Info("Using memory cache", nil)
	interval := time.Duration(cfg.Cache.Memory.CleanupInterval) * time.Second
	return cacheBackend{cache: memory.NewMemoryCacheWithCleanup(interval)}
}

// strategies returns the flag-enabled extraction strategies. With every
// strategy flag off the extractor runs all of them.
func strategies(ctx context.Context, flags featureflags.Manager, logger interfaces.Logger) []extract.Strategy {
	var enabled []extract.Strategy
	if flags.IsEnabled(ctx, featureflags.StateStrategy) {
		enabled = append(enabled, extract.NewStateStrategy())
	}
	if flags.IsEnabled(ctx, featureflags.PatternStrategy) {
		enabled = append(enabled, extract.NewPatternStrategy())
	}
	if flags.IsEnabled(ctx, featureflags.DOMStrategy) {
		enabled = append(enabled, extract.NewDOMStrategy())
	}
	if len(enabled) == 0 {
		enabled = extract.DefaultStrategies()
		logger.Warn("All extraction strategy flags are off, using every strategy", map[string]interface{}{
			"strategies": []string{extract.StrategyState, extract.StrategyPattern, extract.StrategyDOM},
		})
	}
	return enabled
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	logger.Info("Starting Snapfind API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		logger.Error("Failed to load domain rules", map[string]interface{}{
			"error": err.Error(),
			"file":  cfg.RulesFile,
		})
		os.Exit(1)
	}

	ctx := context.Background()
	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	backend := newCache(cfg, logger)
	if backend.close != nil {
		defer backend.close()
	}

	httpClient := stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
		Timeout:        cfg.Provider.Timeout,
		UserAgent:      cfg.Provider.UserAgent,
		AcceptLanguage: cfg.Provider.AcceptLanguage,
		MaxRetries:     cfg.Provider.MaxRetries,
	})

	deps := interfaces.Dependencies{
		Cache:      backend.cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	var metrics *prometheus.Metrics
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		metrics = prometheus.New()
		deps.Metrics = metrics
	}

	providerClient := provider.NewClient(deps, provider.Config{
		UploadURL:        cfg.Provider.UploadURL,
		SearchURL:        cfg.Provider.SearchURL,
		MaxContinuations: cfg.Provider.MaxContinuations,
	})
	extractor := extract.NewExtractor(deps, strategies(ctx, flags, logger)...)
	store := session.NewStore(deps, cfg.Session.TTL)

	searchOpts := search.Options{
		Rules:         rules,
		MaxImageBytes: cfg.MaxImageBytes,
	}
	if flags.IsEnabled(ctx, featureflags.ResultCache) {
		searchOpts.ResultCacheTTL = cfg.Session.ResultCacheTTL
	}
	searchService := search.NewSearchService(deps, providerClient, extractor, store, searchOpts)

	sessionPresenter := presenter.New(deps, store, rules.Marketplaces, cfg.Session.ResultsPerPage)

	var titles interfaces.TitleResolver
	if flags.IsEnabled(ctx, featureflags.ExportTitles) {
		titles = preview.NewTitleService(deps, preview.Config{})
	}
	exportService := export.NewService(deps, store, xlsx.NewWriter(xlsx.DefaultFileName), titles)

	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) && cfg.Server.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst)
		defer limiter.Stop()
		apiConfig.RateLimiter = limiter
	}
	if metrics != nil {
		apiConfig.MetricsHandler = metrics.Handler()
	}
	humaAPI, router := api.NewAPI(apiConfig)

	handlers.NewSearchHandler(searchService, sessionPresenter, cfg.MaxImageBytes).RegisterRoutes(humaAPI)
	handlers.NewSessionHandler(sessionPresenter, exportService).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(api.Version, backend.stats).RegisterRoutes(humaAPI)

	// Provider pagination can take a while; the write timeout covers a full search.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}
