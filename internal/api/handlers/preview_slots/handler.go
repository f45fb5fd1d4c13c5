package preview_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	previewSlots "github.com/m04kA/SMC-SlotService/internal/usecase/preview_slots"
)

const (
	msgInvalidTherapistID = "некорректный ID терапевта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация расписания"
)

type Handler struct {
	useCase PreviewSlotsUseCase
	logger  Logger
}

func NewHandler(useCase PreviewSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/therapists/{therapistId}/slots/preview
// Пустое тело - генерация целиком по шаблону терапевта. Ничего не сохраняет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	therapistID, err := handlers.TherapistID(r)
	if err != nil {
		h.logger.Warn("POST /therapists/{id}/slots/preview - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	var req handlers.ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /therapists/{id}/slots/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	overrides, err := req.ToOverrides()
	if err != nil {
		h.logger.Warn("POST /therapists/{id}/slots/preview - Invalid base date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfig)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &previewSlots.Request{
		TherapistID: therapistID,
		Schedule:    overrides,
	})
	if err != nil {
		switch {
		case errors.Is(err, previewSlots.ErrInvalidInput):
			h.logger.Warn("POST /therapists/{id}/slots/preview - Invalid config: therapist_id=%d, error=%v", therapistID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("POST /therapists/{id}/slots/preview - Failed to preview slots: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /therapists/{id}/slots/preview - Preview built: therapist_id=%d, outcome=%s, slots_count=%d",
		therapistID, result.Outcome, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
