package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rumahkita/penjualan-pricing/internal/repositories"
	"github.com/rumahkita/penjualan-pricing/internal/services"
	"github.com/rumahkita/penjualan-pricing/internal/validators"
)

const (
	msgCreateFailed = "Terjadi kesalahan saat menambahkan data"
	msgUpdateFailed = "Terjadi kesalahan saat memperbarui data"
	msgInvalidData  = "Data yang diberikan tidak valid"
	msgNotFound     = "Data tidak ditemukan"
	msgBadRequest   = "Format permintaan tidak valid"
	msgTooLarge     = "Ukuran permintaan terlalu besar"
)

// maxBodyBytes ограничивает тело запроса; payload диалога занимает меньше килобайта
const maxBodyBytes = 64 << 10

type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type validationEnvelope struct {
	Message   string              `json:"message"`
	Errors    map[string][]string `json:"errors"`
	Suggested map[string]string   `json:"suggested,omitempty"`
}

type mismatchEnvelope struct {
	Message    string              `json:"message"`
	Mismatches []services.Mismatch `json:"mismatches"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("gagal menulis respons", "error", err)
	}
}

func respondData(w http.ResponseWriter, status int, message string, data any) {
	respondJSON(w, status, envelope{Message: message, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Message: message})
}

func respondValidation(w http.ResponseWriter, message string, errs validators.ValidationErrors) {
	body := validationEnvelope{Message: message, Errors: errs.ByField()}
	for _, e := range errs {
		if e.Suggested == "" {
			continue
		}
		if body.Suggested == nil {
			body.Suggested = make(map[string]string)
		}
		body.Suggested[e.Field] = e.Suggested
	}
	respondJSON(w, http.StatusUnprocessableEntity, body)
}

// respondError переводит ошибку сервиса в HTTP-ответ.
// fallback - сообщение для диалога, когда причина не относится к вводу.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var verrs validators.ValidationErrors
	var rerr *services.ReconcileError
	switch {
	case errors.As(err, &verrs):
		respondValidation(w, fallback, verrs)
	case errors.As(err, &rerr):
		respondJSON(w, http.StatusConflict, mismatchEnvelope{Message: services.ErrReconcileMismatch.Error(), Mismatches: rerr.Mismatches})
	case errors.Is(err, repositories.ErrNotFound):
		respondMessage(w, http.StatusNotFound, msgNotFound)
	default:
		slog.Error("permintaan gagal", "error", err)
		respondMessage(w, http.StatusInternalServerError, fallback)
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// respondDecodeError отвечает 413 на слишком большое тело и 400 на битый JSON
func respondDecodeError(w http.ResponseWriter, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondMessage(w, http.StatusRequestEntityTooLarge, msgTooLarge)
		return
	}
	respondMessage(w, http.StatusBadRequest, message)
}
