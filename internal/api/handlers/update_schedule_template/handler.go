package update_schedule_template

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/service/templates"
)

const (
	msgInvalidTherapistID = "некорректный ID терапевта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные шаблона расписания"
	msgTherapistNotFound  = "терапевт не найден"
	msgTherapistInactive  = "терапевт деактивирован"
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

// Handle PUT /api/v1/therapists/{therapistId}/schedule-template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	therapistID, err := handlers.TherapistID(r)
	if err != nil {
		h.logger.Warn("PUT /therapists/{id}/schedule-template - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	var req UpdateScheduleTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /therapists/{id}/schedule-template - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), therapistID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrInvalidInput):
			h.logger.Warn("PUT /therapists/{id}/schedule-template - Invalid data: therapist_id=%d, error=%v", therapistID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, templates.ErrTherapistNotFound):
			h.logger.Warn("PUT /therapists/{id}/schedule-template - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, templates.ErrTherapistInactive):
			h.logger.Warn("PUT /therapists/{id}/schedule-template - Therapist inactive: therapist_id=%d", therapistID)
			handlers.RespondUnprocessable(w, msgTherapistInactive)

		default:
			h.logger.Error("PUT /therapists/{id}/schedule-template - Failed to save template: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /therapists/{id}/schedule-template - Template saved: therapist_id=%d, template_id=%d",
		therapistID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
