package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Error codes carried in the "error" field of every failure response.
const (
	codeValidation   = "validation_failed"
	codeNotFound     = "not_found"
	codeConflict     = "conflict"
	codeServerError  = "server_error"
	codeUnauthorized = "unauthorized"
	codeForbidden    = "forbidden"
)

const (
	msgInvalidID     = "ID harus ada dan lebih besar dari 0"
	msgInvalidFormat = "Format request tidak valid"
	msgIDOnCreate    = "Jangan mengirim id saat create"
	msgIDMismatch    = "ID pada body tidak sesuai dengan ID pada URL"
	msgServerError   = "Terjadi kesalahan pada server"
	msgUnauthorized  = "Token tidak valid atau tidak ada"
	msgForbidden     = "Tidak memiliki akses untuk mengubah data"
)

type messageResponse struct {
	Message string `json:"message"`
	ID      *int32 `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func decodeJSON(r *http.Request, out interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string, id int32) {
	writeJSON(w, status, messageResponse{Message: message, ID: &id})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, messageResponse{Message: message, Error: code})
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, codeValidation, message)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error().
		Err(err).
		Str("request_id", requestIDFromContext(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	writeError(w, http.StatusInternalServerError, codeServerError, msgServerError)
}

func parseID(raw string) (int32, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func queryID(r *http.Request) (int32, bool) {
	return parseID(r.URL.Query().Get("id"))
}

func pathID(r *http.Request) (int32, bool) {
	return parseID(chi.URLParam(r, "id"))
}
