package generate_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	generateSlots "github.com/m04kA/SMC-SlotService/internal/usecase/generate_slots"
)

const (
	msgInvalidTherapistID = "некорректный ID терапевта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация расписания"
	msgInvalidTime        = "некорректное время начала или окончания"
	msgEmptyRange         = "укажите корректное время начала и окончания и повторите генерацию"
	msgTooManySlots       = "слишком много слотов, сократите диапазон"
	msgTherapistNotFound  = "терапевт не найден"
	msgTherapistInactive  = "терапевт деактивирован"
	msgKeyReused          = "ключ идемпотентности уже использован с другими параметрами"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/therapists/{therapistId}/slots/generate
// Header: Idempotency-Key (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	therapistID, err := handlers.TherapistID(r)
	if err != nil {
		h.logger.Warn("POST /therapists/{id}/slots/generate - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	var req handlers.ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /therapists/{id}/slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	overrides, err := req.ToOverrides()
	if err != nil {
		h.logger.Warn("POST /therapists/{id}/slots/generate - Invalid base date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfig)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &generateSlots.Request{
		TherapistID:    therapistID,
		IdempotencyKey: strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader)),
		Schedule:       overrides,
	})
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /therapists/{id}/slots/generate - Invalid config: therapist_id=%d, error=%v", therapistID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, generateSlots.ErrInvalidTime):
			h.logger.Warn("POST /therapists/{id}/slots/generate - Invalid time: therapist_id=%d", therapistID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, generateSlots.ErrEmptyRange):
			h.logger.Warn("POST /therapists/{id}/slots/generate - Empty range: therapist_id=%d", therapistID)
			handlers.RespondBadRequest(w, msgEmptyRange)

		case errors.Is(err, generateSlots.ErrTooManySlots):
			h.logger.Warn("POST /therapists/{id}/slots/generate - Too many slots: therapist_id=%d, error=%v", therapistID, err)
			handlers.RespondBadRequest(w, msgTooManySlots)

		case errors.Is(err, generateSlots.ErrTherapistNotFound):
			h.logger.Warn("POST /therapists/{id}/slots/generate - Therapist not found: therapist_id=%d", therapistID)
			handlers.RespondNotFound(w, msgTherapistNotFound)

		case errors.Is(err, generateSlots.ErrTherapistInactive):
			h.logger.Warn("POST /therapists/{id}/slots/generate - Therapist inactive: therapist_id=%d", therapistID)
			handlers.RespondUnprocessable(w, msgTherapistInactive)

		case errors.Is(err, generateSlots.ErrIdempotencyKeyReused):
			h.logger.Warn("POST /therapists/{id}/slots/generate - Idempotency key reused: therapist_id=%d", therapistID)
			handlers.RespondUnprocessable(w, msgKeyReused)

		default:
			h.logger.Error("POST /therapists/{id}/slots/generate - Failed to generate slots: therapist_id=%d, error=%v",
				therapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Replayed {
		w.Header().Set(ReplayedHeader, "true")
	}

	h.logger.Info("POST /therapists/{id}/slots/generate - Slots generated: therapist_id=%d, created=%d, ignored=%d, replayed=%t",
		therapistID, len(result.Created), len(result.Ignored), result.Replayed)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
