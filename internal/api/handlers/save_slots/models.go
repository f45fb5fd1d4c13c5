package save_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SaveSlotsRequest HTTP request model
type SaveSlotsRequest struct {
	Slots []SlotRequest `json:"slots"`
}

// SlotRequest слот для сохранения. Дата принимается в поле date или slotDate.
type SlotRequest struct {
	Date      string `json:"date,omitempty"`
	SlotDate  string `json:"slotDate,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status,omitempty"`
}

// ToDomainSlots конвертирует HTTP запрос в domain модели
func (r *SaveSlotsRequest) ToDomainSlots(therapistID int64) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0, len(r.Slots))

	for i, s := range r.Slots {
		rawDate := s.Date
		if rawDate == "" {
			rawDate = s.SlotDate
		}
		date, err := handlers.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("slot #%d: date: %w", i, err)
		}

		start, err := types.Normalize(s.StartTime)
		if err != nil {
			return nil, fmt.Errorf("slot #%d: startTime: %w", i, err)
		}
		end, err := types.Normalize(s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("slot #%d: endTime: %w", i, err)
		}

		slots = append(slots, &domain.Slot{
			TherapistID: therapistID,
			SlotDate:    date,
			StartTime:   start,
			EndTime:     end,
			Status:      domain.SlotStatus(s.Status),
		})
	}

	return slots, nil
}
