package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/rumahkita/penjualan-pricing/internal/config"
)

func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Requested-With"},
		MaxAge:         300,
	})

	return c.Handler
}
