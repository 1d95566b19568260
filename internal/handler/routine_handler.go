package handler

import (
	"net/http"

	"skincare-api/internal/model"
	"skincare-api/internal/service"

	"github.com/rs/zerolog"
)

// RoutineHandler handles routine generation requests.
type RoutineHandler struct {
	service service.RoutineService
	logger  zerolog.Logger
}

// NewRoutineHandler creates a new routine handler.
func NewRoutineHandler(service service.RoutineService, logger zerolog.Logger) *RoutineHandler {
	return &RoutineHandler{
		service: service,
		logger:  logger.With().Str("handler", "routine").Logger(),
	}
}

// Generate handles POST /routine requests.
func (h *RoutineHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req model.RoutineRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err, h.logger)
		return
	}

	routine, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Response{Success: true, Routine: routine})
}
