package get_schedule_template

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/service/templates"
)

const (
	msgInvalidTherapistID = "некорректный ID терапевта"
	msgNotFound           = "шаблон расписания не найден"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/therapists/{therapistId}/schedule-template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	therapistID, err := handlers.TherapistID(r)
	if err != nil {
		h.logger.Warn("GET /therapists/{id}/schedule-template - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	result, err := h.service.Get(r.Context(), therapistID)
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			h.logger.Warn("GET /therapists/{id}/schedule-template - Template not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /therapists/{id}/schedule-template - Failed to get template: therapist_id=%d, error=%v",
			therapistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /therapists/{id}/schedule-template - Template retrieved: therapist_id=%d", therapistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
