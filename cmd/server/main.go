package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rumahkita/penjualan-pricing/internal/config"
	"github.com/rumahkita/penjualan-pricing/internal/database"
	"github.com/rumahkita/penjualan-pricing/internal/handlers"
	"github.com/rumahkita/penjualan-pricing/internal/health"
	httpLayer "github.com/rumahkita/penjualan-pricing/internal/http"
	"github.com/rumahkita/penjualan-pricing/internal/logging"
	"github.com/rumahkita/penjualan-pricing/internal/middleware"
	"github.com/rumahkita/penjualan-pricing/internal/repositories"
	"github.com/rumahkita/penjualan-pricing/internal/services"
	"github.com/rumahkita/penjualan-pricing/internal/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("konfigurasi tidak valid", "error", err)
		os.Exit(1)
	}
	logging.Setup(os.Stdout, cfg.LogLevel)

	ctx := context.Background()

	shutdownTracing, err := tracing.InitTracing(ctx, tracing.Options{
		ServiceName: cfg.OTELServiceName,
		Endpoint:    cfg.OTELEndpoint,
		SampleRatio: cfg.TraceSampleRatio,
	})
	if err != nil {
		slog.Error("gagal menginisialisasi tracing", "error", err)
		os.Exit(1)
	}

	checker := health.NewHealthChecker()

	var (
		catalog   repositories.CatalogRepository
		penjualan repositories.PenjualanRepository
		pool      *pgxpool.Pool
	)
	if cfg.DatabaseURL != "" {
		pool, err = database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("gagal terhubung ke database", "error", err)
			os.Exit(1)
		}
		if err := database.NewMigrator(pool).RunMigrations(ctx); err != nil {
			slog.Error("migrasi gagal", "error", err)
			os.Exit(1)
		}
		catalog = repositories.NewCatalogRepositoryPostgres(pool)
		penjualan = repositories.NewPenjualanRepositoryPostgres(pool)
		checker.Register("database", pool)
	} else {
		slog.Warn("DATABASE_URL kosong, data disimpan di memori")
		mem := repositories.NewCatalogRepositoryMemory()
		for _, u := range repositories.DemoUnitTypes() {
			mem.PutUnitType(u)
		}
		catalog = mem
		penjualan = repositories.NewPenjualanRepositoryMemory()
	}

	var cache repositories.CacheRepository = repositories.NewMemoryCache()
	if cfg.RedisAddr != "" {
		redisCache, err := repositories.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			// без Redis справочник кэшируется в памяти процесса
			slog.Warn("redis tidak tersedia, memakai cache memori", "error", err)
		} else {
			defer redisCache.Close()
			cache = redisCache
			checker.Register("redis", redisCache)
		}
	}
	catalog = repositories.NewCachedCatalogRepository(catalog, cache, cfg.CatalogCacheTTL)

	quoteService := services.NewQuoteService(cfg, catalog)
	penjualanService := services.NewPenjualanService(quoteService, penjualan)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(cfg,
		handlers.NewQuoteHandler(quoteService),
		handlers.NewCatalogHandler(catalog),
		handlers.NewPenjualanHandler(penjualanService),
		handlers.NewHealthHandler(checker),
		rateLimiter,
	)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server berjalan", "addr", cfg.Addr(), "progress_basis", cfg.ProgressBasis, "strict_quotes", cfg.StrictQuotes)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("server gagal dijalankan", "error", err)
	case <-quit:
		slog.Info("mematikan server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("gagal mematikan server", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("gagal menghentikan tracing", "error", err)
	}
	if pool != nil {
		pool.Close()
	}

	slog.Info("server berhenti")
}
