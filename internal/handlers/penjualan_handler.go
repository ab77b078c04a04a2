package handlers

import (
	"net/http"

	"github.com/rumahkita/penjualan-pricing/internal/models"
	"github.com/rumahkita/penjualan-pricing/internal/services"
)

type PenjualanHandler struct {
	Service *services.PenjualanService
}

func NewPenjualanHandler(service *services.PenjualanService) *PenjualanHandler {
	return &PenjualanHandler{Service: service}
}

// Create handles POST /penjualan
func (h *PenjualanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.PenjualanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err, msgCreateFailed)
		return
	}

	p, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err, msgCreateFailed)
		return
	}
	respondData(w, http.StatusCreated, "Data berhasil ditambahkan", p)
}

// Update handles PUT|PATCH /penjualan/{id}
func (h *PenjualanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, msgUpdateFailed)
		return
	}
	var req models.PenjualanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err, msgUpdateFailed)
		return
	}

	p, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, err, msgUpdateFailed)
		return
	}
	respondData(w, http.StatusOK, "Data berhasil diperbarui", p)
}

// Get handles GET /penjualan/{id}
func (h *PenjualanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, msgBadRequest)
		return
	}
	p, err := h.Service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, "Gagal memuat data")
		return
	}
	respondData(w, http.StatusOK, "ok", p)
}
