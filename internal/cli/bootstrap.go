package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/porquinho-server/internal/advisor"
	"github.com/carson-networks/porquinho-server/internal/cache"
	"github.com/carson-networks/porquinho-server/internal/config"
	"github.com/carson-networks/porquinho-server/internal/logging"
	"github.com/carson-networks/porquinho-server/internal/service"
	"github.com/carson-networks/porquinho-server/internal/storage"
)

const adviceCachePrefix = "porquinho:"

// runtime is everything a command needs once configuration is loaded.
type runtime struct {
	cfg     *config.Config
	logger  *logrus.Logger
	store   *storage.Storage
	service *service.Service

	closers []func() error
}

func (app *App) loadConfig() (*config.Config, error) {
	if app.configFile != "" {
		return config.Load(app.configFile)
	}
	return config.ProcessEnvironmentVariables()
}

func (app *App) bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := app.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.SetupLogging(cfg.LogLevel)

	store, err := storage.NewStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	rt := &runtime{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		closers: []func() error{store.Close},
	}

	rt.service = service.NewService(store, service.Options{
		Rates:          cfg.Rates(),
		Generator:      rt.adviceGenerator(ctx),
		AdviceCache:    rt.adviceCache(ctx),
		AdviceCacheTTL: cfg.AdviceCacheTTL,
		OwnerName:      cfg.OwnerName,
	})

	return rt, nil
}

// adviceCache prefers redis and falls back to memory when it is not
// configured or does not answer.
func (rt *runtime) adviceCache(ctx context.Context) cache.ICache {
	if !rt.cfg.RedisEnabled() {
		return cache.NewMemoryCache()
	}

	redisCache := cache.NewRedisCache(rt.cfg.RedisAddress, adviceCachePrefix)
	if err := redisCache.Ping(ctx); err != nil {
		rt.logger.WithError(err).WithField("address", rt.cfg.RedisAddress).Warn("Bootstrap.adviceCache.redisUnavailable")
		_ = redisCache.Close()
		return cache.NewMemoryCache()
	}

	rt.closers = append(rt.closers, redisCache.Close)
	return redisCache
}

// adviceGenerator returns a nil interface when gemini is off, which the
// advice service answers with its not-configured text.
func (rt *runtime) adviceGenerator(ctx context.Context) advisor.Generator {
	if !rt.cfg.GeminiEnabled() {
		return nil
	}

	generator, err := advisor.NewGeminiGenerator(ctx, rt.cfg.GeminiAPIKey, rt.cfg.GeminiModel)
	if err != nil {
		rt.logger.WithError(err).Warn("Bootstrap.adviceGenerator.geminiUnavailable")
		return nil
	}

	rt.closers = append(rt.closers, generator.Close)
	return generator
}

func (rt *runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		errs = append(errs, rt.closers[i]())
	}
	return errors.Join(errs...)
}
