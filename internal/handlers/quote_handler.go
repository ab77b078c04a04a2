package handlers

import (
	"net/http"

	"github.com/rumahkita/penjualan-pricing/internal/models"
	"github.com/rumahkita/penjualan-pricing/internal/services"
)

type QuoteHandler struct {
	Service *services.QuoteService
}

func NewQuoteHandler(service *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: service}
}

// Quote handles POST /api/quotes
// Пересчет разбивки на каждое изменение поля диалога
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err, msgBadRequest)
		return
	}

	res, err := h.Service.Quote(r.Context(), req)
	if err != nil {
		respondError(w, err, msgInvalidData)
		return
	}
	respondData(w, http.StatusOK, "ok", res)
}
