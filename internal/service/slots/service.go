package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/service/slots/models"
)

// Service сервис календаря слотов терапевта
type Service struct {
	slotRepo  SlotRepository
	txManager TxManager
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	txManager TxManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// SaveBatch сохраняет пачку слотов терапевта по принципу insert-if-absent.
// Все вставки выполняются в одной транзакции. Уже существующие слоты
// (в том числе забронированные) не изменяются и попадают в Ignored.
func (s *Service) SaveBatch(ctx context.Context, therapistID int64, batch []*domain.Slot) (*models.SaveSlotsResponse, error) {
	if len(batch) > domain.MaxSlotsPerBatch {
		s.logger.Warn("SaveBatch: batch too large: therapist_id=%d, size=%d", therapistID, len(batch))
		return nil, fmt.Errorf("%w: %d slots, max %d", ErrBatchTooLarge, len(batch), domain.MaxSlotsPerBatch)
	}

	for i, slot := range batch {
		if err := prepareSlot(therapistID, slot); err != nil {
			s.logger.Warn("SaveBatch: invalid slot #%d: therapist_id=%d, error=%v", i, therapistID, err)
			return nil, fmt.Errorf("%w: slot #%d: %v", ErrInvalidInput, i, err)
		}
	}

	created := make([]*domain.Slot, 0, len(batch))
	ignored := make([]*domain.Slot, 0)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, slot := range batch {
			ok, err := s.slotRepo.InsertIfAbsent(ctx, slot)
			if err != nil {
				return err
			}
			if ok {
				created = append(created, slot)
			} else {
				ignored = append(ignored, slot)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("SaveBatch: failed to save slots: therapist_id=%d, error=%v", therapistID, err)
		return nil, fmt.Errorf("%w: SaveBatch: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.ObserveSlotsPersisted(len(created), len(ignored))
	}

	s.logger.Info("SaveBatch: therapist_id=%d, created=%d, ignored=%d", therapistID, len(created), len(ignored))

	return &models.SaveSlotsResponse{
		Created: models.FromDomainSlots(created),
		Ignored: models.FromDomainSlots(ignored),
	}, nil
}

// ListByDate возвращает слоты терапевта за день, отсортированные по времени начала
func (s *Service) ListByDate(ctx context.Context, therapistID int64, date time.Time) (*models.SlotListResponse, error) {
	var slots []*domain.Slot
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		slots, err = s.slotRepo.ListByTherapistAndDate(ctx, therapistID, date)
		return err
	})
	if err != nil {
		s.logger.Error("ListByDate: repository error: therapist_id=%d, error=%v", therapistID, err)
		return nil, fmt.Errorf("%w: ListByDate: %v", ErrInternal, err)
	}

	return &models.SlotListResponse{Slots: models.FromDomainSlots(slots)}, nil
}

// ListByRange возвращает слоты терапевта в диапазоне дат [from, to]
func (s *Service) ListByRange(ctx context.Context, therapistID int64, from, to time.Time) (*models.SlotListResponse, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end is before its start", ErrInvalidInput)
	}
	if to.Sub(from) > time.Duration(domain.MaxListRangeDays)*24*time.Hour {
		return nil, fmt.Errorf("%w: date range exceeds %d days", ErrInvalidInput, domain.MaxListRangeDays)
	}

	var slots []*domain.Slot
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		slots, err = s.slotRepo.ListByTherapistAndRange(ctx, therapistID, from, to)
		return err
	})
	if err != nil {
		s.logger.Error("ListByRange: repository error: therapist_id=%d, error=%v", therapistID, err)
		return nil, fmt.Errorf("%w: ListByRange: %v", ErrInternal, err)
	}

	return &models.SlotListResponse{Slots: models.FromDomainSlots(slots)}, nil
}

// prepareSlot проверяет слот и заполняет значения по умолчанию
func prepareSlot(therapistID int64, slot *domain.Slot) error {
	if slot == nil {
		return errors.New("slot is empty")
	}
	if slot.TherapistID != 0 && slot.TherapistID != therapistID {
		return fmt.Errorf("therapistId %d does not match %d", slot.TherapistID, therapistID)
	}
	if slot.SlotDate.IsZero() {
		return fmt.Errorf("date is required")
	}
	if err := slot.StartTime.Validate(); err != nil {
		return fmt.Errorf("startTime: %v", err)
	}
	if err := slot.EndTime.Validate(); err != nil {
		return fmt.Errorf("endTime: %v", err)
	}
	if slot.Status == "" {
		slot.Status = domain.SlotStatusAvailable
	}
	if !slot.Status.IsValid() {
		return fmt.Errorf("unknown status %q", slot.Status)
	}

	slot.TherapistID = therapistID
	slot.SlotDate = domain.DateOnly(slot.SlotDate)
	return nil
}
