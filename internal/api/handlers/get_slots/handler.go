package get_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/service/slots"
	"github.com/m04kA/SMC-SlotService/internal/service/slots/models"
)

const (
	msgInvalidTherapistID = "некорректный ID терапевта"
	msgMissingDate        = "дата обязательна: date или from и to"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "некорректный диапазон дат"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/therapists/{therapistId}/slots
// Query params: date (YYYY-MM-DD) либо from и to (YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	therapistID, err := handlers.TherapistID(r)
	if err != nil {
		h.logger.Warn("GET /therapists/{id}/slots - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	query := r.URL.Query()
	dateStr, fromStr, toStr := query.Get("date"), query.Get("from"), query.Get("to")

	var result *models.SlotListResponse

	switch {
	case dateStr != "":
		date, err := handlers.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /therapists/{id}/slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.ListByDate(r.Context(), therapistID, date)
		if err != nil {
			h.respondServiceError(w, therapistID, err)
			return
		}

	case fromStr != "" && toStr != "":
		from, err := handlers.ParseDate(fromStr)
		if err != nil {
			h.logger.Warn("GET /therapists/{id}/slots - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		to, err := handlers.ParseDate(toStr)
		if err != nil {
			h.logger.Warn("GET /therapists/{id}/slots - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.ListByRange(r.Context(), therapistID, from, to)
		if err != nil {
			h.respondServiceError(w, therapistID, err)
			return
		}

	default:
		h.logger.Warn("GET /therapists/{id}/slots - Missing date: therapist_id=%d", therapistID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	h.logger.Info("GET /therapists/{id}/slots - Slots retrieved: therapist_id=%d, slots_count=%d",
		therapistID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, therapistID int64, err error) {
	if errors.Is(err, slots.ErrInvalidInput) {
		h.logger.Warn("GET /therapists/{id}/slots - Invalid range: therapist_id=%d, error=%v", therapistID, err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	h.logger.Error("GET /therapists/{id}/slots - Failed to get slots: therapist_id=%d, error=%v", therapistID, err)
	handlers.RespondInternalError(w)
}
