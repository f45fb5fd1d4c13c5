package models

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// SlotResponse слот в формате API
type SlotResponse struct {
	ID          int64  `json:"id,omitempty"`
	TherapistID int64  `json:"therapistId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
}

// SaveSlotsResponse результат сохранения пачки слотов.
// Ignored содержит слоты, которые уже существовали в календаре.
type SaveSlotsResponse struct {
	Created []SlotResponse `json:"created"`
	Ignored []SlotResponse `json:"ignored"`
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		TherapistID: s.TherapistID,
		Date:        s.SlotDate.Format(domain.DateFormat),
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		Status:      string(s.Status),
	}
}

// FromDomainSlots конвертирует слайс domain моделей, nil превращается в пустой слайс
func FromDomainSlots(slots []*domain.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
