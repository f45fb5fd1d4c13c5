package generate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
)

const maxIdempotencyKeyLength = 128

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TherapistID <= 0 {
		return fmt.Errorf("%w: therapistID must be positive", ErrInvalidInput)
	}
	if len(req.IdempotencyKey) > maxIdempotencyKeyLength {
		return fmt.Errorf("%w: idempotency key is longer than %d", ErrInvalidInput, maxIdempotencyKeyLength)
	}
	return nil
}

// validateResult отклоняет пустые и слишком большие результаты до сохранения
func validateResult(result *slotgen.Result) error {
	switch result.Outcome {
	case slotgen.OutcomeInvalidTime:
		return ErrInvalidTime
	case slotgen.OutcomeEmptyRange:
		return ErrEmptyRange
	}

	if result.IsEmpty() {
		return ErrEmptyRange
	}
	if len(result.Slots) > domain.MaxSlotsPerBatch {
		return fmt.Errorf("%w: %d slots, max %d", ErrTooManySlots, len(result.Slots), domain.MaxSlotsPerBatch)
	}
	return nil
}
