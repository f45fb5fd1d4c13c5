package preview_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	templateRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/template"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
)

// UseCase предпросмотр слотов по недельному расписанию без сохранения
type UseCase struct {
	templateRepo TemplateRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит слоты и возвращает их вместе с тегом исхода.
// Нераспознанное время или пустой диапазон дают пустой список, а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	tpl, err := uc.templateRepo.GetByTherapistID(ctx, req.TherapistID)
	if err != nil && !errors.Is(err, templateRepo.ErrTemplateNotFound) {
		uc.logger.Error("PreviewSlots: failed to load template: therapist_id=%d, error=%v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to load template: %v", ErrInternal, err)
	}

	cfg, err := slotgen.Resolve(req.Schedule, tpl, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("PreviewSlots: invalid config: therapist_id=%d, error=%v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result, err := slotgen.Generate(req.TherapistID, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveGeneration(string(result.Outcome))
	}

	uc.logger.Info("PreviewSlots: therapist_id=%d, base_date=%s, outcome=%s, slots=%d",
		req.TherapistID, cfg.BaseDate.Format(domain.DateFormat), result.Outcome, len(result.Slots))

	return &Response{
		Outcome: result.Outcome,
		Slots:   result.Slots,
	}, nil
}
