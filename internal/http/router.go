package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rumahkita/penjualan-pricing/internal/config"
	"github.com/rumahkita/penjualan-pricing/internal/handlers"
	"github.com/rumahkita/penjualan-pricing/internal/middleware"
)

// NewRouter собирает маршруты. CORS и recovery оборачивают весь роутер,
// чтобы preflight OPTIONS не упирался в фильтр методов.
func NewRouter(
	cfg *config.Config,
	quoteHandler *handlers.QuoteHandler,
	catalogHandler *handlers.CatalogHandler,
	penjualanHandler *handlers.PenjualanHandler,
	healthHandler *handlers.HealthHandler,
	limiter *middleware.RateLimiter,
) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/quotes", quoteHandler.Quote).Methods("POST")
	api.HandleFunc("/skema-pembayaran", catalogHandler.ListSchemes).Methods("GET")
	api.HandleFunc("/skema-pembayaran/{id}", catalogHandler.GetScheme).Methods("GET")
	api.HandleFunc("/dp-range", catalogHandler.DPRange).Methods("GET")
	api.HandleFunc("/projeks/{id}/tipe", catalogHandler.ListUnitTypes).Methods("GET")
	api.HandleFunc("/tipe/{id}", catalogHandler.GetUnitType).Methods("GET")

	// Транзакции доступны и по старому пути, и под /api
	mountPenjualan(r, penjualanHandler, limiter)
	mountPenjualan(api, penjualanHandler, limiter)

	return middleware.PanicRecovery(middleware.RequestLogging(middleware.NewCORS(cfg)(r)))
}

func mountPenjualan(r *mux.Router, h *handlers.PenjualanHandler, limiter *middleware.RateLimiter) {
	limit := middleware.RateLimit(limiter)
	r.Handle("/penjualan", limit(http.HandlerFunc(h.Create))).Methods("POST")
	r.Handle("/penjualan/{id}", limit(http.HandlerFunc(h.Update))).Methods("PUT", "PATCH")
	r.HandleFunc("/penjualan/{id}", h.Get).Methods("GET")
}
