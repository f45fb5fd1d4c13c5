package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	templateRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/template"
	"github.com/m04kA/SMC-SlotService/internal/integrations/therapistservice"
	"github.com/m04kA/SMC-SlotService/internal/service/templates/models"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Service сервис шаблонов недельного расписания
type Service struct {
	templateRepo    TemplateRepository
	therapistClient TherapistClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(
	templateRepo TemplateRepository,
	therapistClient TherapistClient,
	logger Logger,
) *Service {
	return &Service{
		templateRepo:    templateRepo,
		therapistClient: therapistClient,
		logger:          logger,
	}
}

// Get возвращает шаблон терапевта
func (s *Service) Get(ctx context.Context, therapistID int64) (*models.TemplateResponse, error) {
	tpl, err := s.templateRepo.GetByTherapistID(ctx, therapistID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("Get: repository error: therapist_id=%d, error=%v", therapistID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTemplate(tpl), nil
}

// Save валидирует и сохраняет шаблон терапевта.
// Время приводится к HH:MM, дни недели к коротким меткам без повторов.
func (s *Service) Save(ctx context.Context, therapistID int64, req *models.SaveTemplateRequest) (*models.TemplateResponse, error) {
	tpl, err := toDomainTemplate(therapistID, req)
	if err != nil {
		s.logger.Warn("Save: validation failed: therapist_id=%d, error=%v", therapistID, err)
		return nil, err
	}

	therapist, err := s.therapistClient.GetTherapistWithGracefulDegradation(ctx, therapistID)
	switch {
	case errors.Is(err, therapistservice.ErrTherapistNotFound):
		return nil, ErrTherapistNotFound
	case errors.Is(err, therapistservice.ErrServiceDegraded):
		s.logger.Warn("Save: therapist directory unavailable, skipping check: therapist_id=%d", therapistID)
	case err != nil:
		return nil, fmt.Errorf("%w: Save - therapist check: %v", ErrInternal, err)
	case !therapist.IsActive:
		return nil, ErrTherapistInactive
	}

	saved, err := s.templateRepo.Upsert(ctx, tpl)
	if err != nil {
		s.logger.Error("Save: repository error: therapist_id=%d, error=%v", therapistID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: template saved: therapist_id=%d, template_id=%d", therapistID, saved.ID)
	return models.FromDomainTemplate(saved), nil
}

func toDomainTemplate(therapistID int64, req *models.SaveTemplateRequest) (*domain.ScheduleTemplate, error) {
	if req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if req.GapMinutes < 0 || req.GapMinutes > domain.MaxGapMinutes {
		return nil, fmt.Errorf("%w: gapMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxGapMinutes)
	}
	if req.AddonMinutes < 0 || req.AddonMinutes > domain.MaxAddonMinutes {
		return nil, fmt.Errorf("%w: addonMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxAddonMinutes)
	}

	start, err := types.Normalize(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.Normalize(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if end.IsBefore(start) {
		return nil, fmt.Errorf("%w: startTime is after endTime", ErrInvalidInput)
	}

	days, err := slotgen.ParseWeekdays(req.Weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	labels := make([]string, 0, len(days))
	for _, d := range days {
		labels = append(labels, slotgen.WeekdayLabel(d))
	}

	return &domain.ScheduleTemplate{
		TherapistID:     therapistID,
		DurationMinutes: req.DurationMinutes,
		GapMinutes:      req.GapMinutes,
		AddonMinutes:    req.AddonMinutes,
		IncludeAddon:    req.IncludeAddon,
		StartTime:       start,
		EndTime:         end,
		Weekdays:        labels,
	}, nil
}
