package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"skincare-api/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps err onto a status code and writes the failure envelope.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status, code, message := http.StatusInternalServerError, model.ErrCodeInternalError, "Internal server error."

	if de, ok := model.AsDomainError(err); ok {
		code, message = de.Code, de.Message
		status = statusFor(de.Code)
	}

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Str("code", code).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.Response{
		Success: false,
		Message: message,
		Error:   code,
	})
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON, model.ErrCodeValidation:
		return http.StatusBadRequest
	case model.ErrCodeNoProducts, model.ErrCodeNoMatchingProducts, model.ErrCodeProductNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into dst. Unknown fields are
// rejected when strict is set.
func decodeJSON(r *http.Request, dst any, strict bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &model.DomainError{Code: model.ErrCodeInvalidJSON, Message: "Request body is required.", Err: err}
		}
		return &model.DomainError{Code: model.ErrCodeInvalidJSON, Message: model.ErrInvalidJSON.Message, Err: err}
	}
	return nil
}
