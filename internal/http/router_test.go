package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rumahkita/penjualan-pricing/internal/config"
	"github.com/rumahkita/penjualan-pricing/internal/handlers"
	"github.com/rumahkita/penjualan-pricing/internal/health"
	"github.com/rumahkita/penjualan-pricing/internal/middleware"
	"github.com/rumahkita/penjualan-pricing/internal/models"
	"github.com/rumahkita/penjualan-pricing/internal/repositories"
	"github.com/rumahkita/penjualan-pricing/internal/services"
)

func newTestRouter(t *testing.T, writesPerMinute int) http.Handler {
	t.Helper()
	cfg := &config.Config{
		MaxBasePrice:       100_000_000_000,
		MaxExcessArea:      10_000,
		MaxPricePerUnit:    1_000_000_000,
		ReconcileTolerance: 1,
		ProgressBasis:      "harga",
		CorsAllowedOrigins: []string{"http://localhost:3000"},
	}
	catalog := repositories.NewCatalogRepositoryMemory()
	catalog.PutUnitType(models.UnitType{ID: 1, ProjectID: 1, Name: "Tipe 36", BasePrice: 360_000_000})

	quotes := services.NewQuoteService(cfg, catalog)
	penjualan := services.NewPenjualanService(quotes, repositories.NewPenjualanRepositoryMemory())

	limiter := middleware.NewRateLimiter(writesPerMinute, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(cfg,
		handlers.NewQuoteHandler(quotes),
		handlers.NewCatalogHandler(catalog),
		handlers.NewPenjualanHandler(penjualan),
		handlers.NewHealthHandler(health.NewHealthChecker()),
		limiter,
	)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	req.RemoteAddr = "10.1.1.1:5555"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const penjualanBody = `{"no_transaksi":7,"konsumen_id":2,"kavling_dipesan":"D-3","tipe_id":1,"skema_pembayaran_id":6,"tipe_diskon":"percent","dp":30}`

func TestRouter(t *testing.T) {
	r := newTestRouter(t, 10)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health", "GET", "/health", "", http.StatusOK},
		{"metrics", "GET", "/metrics", "", http.StatusOK},
		{"quote", "POST", "/api/quotes", `{"tipe_id":1,"skema_pembayaran_id":3,"dp":45}`, http.StatusOK},
		{"schemes", "GET", "/api/skema-pembayaran", "", http.StatusOK},
		{"scheme", "GET", "/api/skema-pembayaran/4", "", http.StatusOK},
		{"dp range", "GET", "/api/dp-range?kind=inhouse_12x", "", http.StatusOK},
		{"project tipe", "GET", "/api/projeks/1/tipe", "", http.StatusOK},
		{"tipe", "GET", "/api/tipe/1", "", http.StatusOK},
		{"create", "POST", "/penjualan", penjualanBody, http.StatusCreated},
		{"create under api", "POST", "/api/penjualan", penjualanBody, http.StatusCreated},
		{"get", "GET", "/penjualan/1", "", http.StatusOK},
		{"get under api", "GET", "/api/penjualan/2", "", http.StatusOK},
		{"put", "PUT", "/penjualan/1", penjualanBody, http.StatusOK},
		{"patch", "PATCH", "/api/penjualan/2", penjualanBody, http.StatusOK},
		{"missing", "GET", "/penjualan/99", "", http.StatusNotFound},
		{"wrong method", "DELETE", "/penjualan/1", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d: %s", tt.method, tt.path, w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRouter_WriteRateLimit(t *testing.T) {
	r := newTestRouter(t, 1)

	if w := do(r, "POST", "/penjualan", penjualanBody); w.Code != http.StatusCreated {
		t.Fatalf("first write = %d", w.Code)
	}
	if w := do(r, "POST", "/penjualan", penjualanBody); w.Code != http.StatusTooManyRequests {
		t.Errorf("second write = %d, want 429", w.Code)
	}
	// чтение не лимитируется
	if w := do(r, "GET", "/penjualan/1", ""); w.Code != http.StatusOK {
		t.Errorf("read = %d", w.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t, 10)

	req := httptest.NewRequest(http.MethodOptions, "/api/quotes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow origin = %q (status %d)", got, w.Code)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Errorf("allow methods = %q", w.Header().Get("Access-Control-Allow-Methods"))
	}
}
