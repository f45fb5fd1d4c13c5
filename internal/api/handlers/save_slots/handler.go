package save_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/service/slots"
)

const (
	msgInvalidTherapistID = "некорректный ID терапевта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректные данные слота"
	msgBatchTooLarge      = "слишком много слотов в одном запросе"
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

// Handle POST /api/v1/therapists/{therapistId}/slots
// Сохраняет слоты по принципу insert-if-absent, существующие возвращаются в ignored
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	therapistID, err := handlers.TherapistID(r)
	if err != nil {
		h.logger.Warn("POST /therapists/{id}/slots - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	var req SaveSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /therapists/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	batch, err := req.ToDomainSlots(therapistID)
	if err != nil {
		h.logger.Warn("POST /therapists/{id}/slots - Invalid slot: therapist_id=%d, error=%v", therapistID, err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.service.SaveBatch(r.Context(), therapistID, batch)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /therapists/{id}/slots - Invalid slot: therapist_id=%d, error=%v", therapistID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, slots.ErrBatchTooLarge):
			h.logger.Warn("POST /therapists/{id}/slots - Batch too large: therapist_id=%d, size=%d", therapistID, len(batch))
			handlers.RespondBadRequest(w, msgBatchTooLarge)

		default:
			h.logger.Error("POST /therapists/{id}/slots - Failed to save slots: therapist_id=%d, error=%v", therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /therapists/{id}/slots - Slots saved: therapist_id=%d, created=%d, ignored=%d",
		therapistID, len(result.Created), len(result.Ignored))
	handlers.RespondJSON(w, http.StatusOK, result)
}
