package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/server/services"
	"github.com/iudanet/relocateme/internal/validation"
	"github.com/iudanet/relocateme/pkg/api"
)

// maxBodyBytes ограничивает размер JSON тела запроса
const maxBodyBytes = 1 << 20

// responder содержит общие методы ответа для всех handlers
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	WriteError(w, message, statusCode)
}

// sendServiceError переводит ошибку сервиса в HTTP статус.
// Неизвестные ошибки логируются и скрываются за 500.
func (h responder) sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.sendError(w, r, "internal server error", status)
		return
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.sendError(w, r, services.ErrAuthentication.Error(), status)
		return
	}

	h.sendError(w, r, err.Error(), status)
}

// decodeJSON читает тело запроса в dst
func (h responder) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode request body", slog.Any("error", err))
		h.sendError(w, r, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// StatusFor maps domain errors to HTTP status codes
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, refdata.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidResetCode),
		errors.Is(err, services.ErrResetExpired),
		errors.Is(err, services.ErrInvalidStep),
		errors.Is(err, validation.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes an api.ErrorResponse; used by middleware too
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
