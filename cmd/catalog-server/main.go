package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"marketplace-catalog/internal/catalog/api"
	"marketplace-catalog/internal/catalog/fetch"
	"marketplace-catalog/internal/catalog/repository"
	"marketplace-catalog/internal/common/config"
	"marketplace-catalog/internal/common/logger"
	"marketplace-catalog/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("failed to load configuration", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting catalog server", map[string]interface{}{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	fetcher, err := buildFetcher(cfg, log)
	if err != nil {
		zapLog.Fatal("failed to build fetch client", zap.Error(err))
	}

	gateway := api.NewGateway(fetcher, log)
	searchRepo := repository.NewSearchRepository(gateway, log)
	detailRepo := repository.NewProductDetailRepository(gateway, log)

	handler := web.NewHandler(searchRepo, detailRepo, log)
	router := web.NewRouter(handler)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutMs) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutMs) * time.Millisecond,
	}

	go func() {
		log.Info("listening", map[string]interface{}{"address": cfg.Server.Address})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownGraceMs)*time.Millisecond)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", map[string]interface{}{"error": err.Error()})
	}
}

// buildFetcher picks the live transport when a base URL is configured and
// the fixture transport otherwise.
func buildFetcher(cfg *config.Config, log logger.Logger) (fetch.Fetcher, error) {
	if cfg.API.BaseURL != "" {
		log.Info("using live API transport", map[string]interface{}{"baseUrl": cfg.API.BaseURL})
		return fetch.NewLiveClient(cfg.API, log), nil
	}
	log.Info("using fixture transport", map[string]interface{}{"dir": cfg.Fixtures.Dir})
	return fetch.NewFixtureClient(cfg.Fixtures, log)
}
