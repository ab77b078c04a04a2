package handlers

import (
	"net/http"
	"strings"

	"github.com/rumahkita/penjualan-pricing/internal/repositories"
	"github.com/rumahkita/penjualan-pricing/internal/scheme"
	"github.com/rumahkita/penjualan-pricing/internal/validators"
)

type CatalogHandler struct {
	Repo repositories.CatalogRepository
}

func NewCatalogHandler(repo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

type dpRangeResponse struct {
	Kind   scheme.Kind `json:"kind"`
	Min    float64     `json:"min"`
	Max    float64     `json:"max"`
	Snaps  bool        `json:"snaps"`
	SnapTo float64     `json:"snap_to"`
}

// ListSchemes handles GET /api/skema-pembayaran
func (h *CatalogHandler) ListSchemes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListSchemes(r.Context())
	if err != nil {
		respondError(w, err, "Gagal memuat skema pembayaran")
		return
	}
	respondData(w, http.StatusOK, "ok", list)
}

// GetScheme handles GET /api/skema-pembayaran/{id}
func (h *CatalogHandler) GetScheme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, msgBadRequest)
		return
	}
	s, err := h.Repo.GetScheme(r.Context(), id)
	if err != nil {
		respondError(w, err, "Gagal memuat skema pembayaran")
		return
	}
	respondData(w, http.StatusOK, "ok", s)
}

// DPRange handles GET /api/dp-range?kind=
// Диапазон DP, который диалог показывает рядом с полем
func (h *CatalogHandler) DPRange(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("kind"))
	kind, err := scheme.ParseCode(raw)
	if err != nil {
		respondValidation(w, msgInvalidData, validators.ValidationErrors{
			{Field: "kind", Message: "jenis skema tidak dikenal"},
		})
		return
	}
	rng, snapTo := kind.DPRange()
	respondData(w, http.StatusOK, "ok", dpRangeResponse{
		Kind:   kind,
		Min:    rng.Min,
		Max:    rng.Max,
		Snaps:  kind.Snaps(),
		SnapTo: snapTo,
	})
}

// ListUnitTypes handles GET /api/projeks/{id}/tipe
func (h *CatalogHandler) ListUnitTypes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, msgBadRequest)
		return
	}
	list, err := h.Repo.ListUnitTypes(r.Context(), id)
	if err != nil {
		respondError(w, err, "Gagal memuat tipe")
		return
	}
	respondData(w, http.StatusOK, "ok", list)
}

// GetUnitType handles GET /api/tipe/{id}
func (h *CatalogHandler) GetUnitType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, msgBadRequest)
		return
	}
	u, err := h.Repo.GetUnitType(r.Context(), id)
	if err != nil {
		respondError(w, err, "Gagal memuat tipe")
		return
	}
	respondData(w, http.StatusOK, "ok", u)
}
