package generate_slots

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	templateRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/template"
	"github.com/m04kA/SMC-SlotService/internal/integrations/therapistservice"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
)

// UseCase генерация и сохранение слотов по недельному расписанию
type UseCase struct {
	templateRepo    TemplateRepository
	slotService     SlotService
	therapistClient TherapistClient
	idempotency     IdempotencyStore
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. idempotency может быть nil.
func NewUseCase(
	templateRepo TemplateRepository,
	slotService SlotService,
	therapistClient TherapistClient,
	idempotency IdempotencyStore,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo:    templateRepo,
		slotService:     slotService,
		therapistClient: therapistClient,
		idempotency:     idempotency,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет генерацию.
// Пустой результат отклоняется до обращения к хранилищу.
// Уже существующие слоты не изменяются и возвращаются в Ignored.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 1. Повтор запроса с тем же ключом возвращает сохраненный ответ
	fingerprint, err := requestFingerprint(req.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: fingerprint: %v", ErrInternal, err)
	}
	cached, ok, err := uc.loadReplay(ctx, req, fingerprint)
	if err != nil {
		return nil, err
	}
	if ok {
		return cached, nil
	}

	// 2. Конфигурация из запроса и шаблона терапевта
	tpl, err := uc.templateRepo.GetByTherapistID(ctx, req.TherapistID)
	if err != nil && !errors.Is(err, templateRepo.ErrTemplateNotFound) {
		uc.logger.Error("GenerateSlots: failed to load template: therapist_id=%d, error=%v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to load template: %v", ErrInternal, err)
	}

	cfg, err := slotgen.Resolve(req.Schedule, tpl, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("GenerateSlots: invalid config: therapist_id=%d, error=%v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Терапевт должен существовать и быть активным
	if err := uc.checkTherapist(ctx, req.TherapistID); err != nil {
		return nil, err
	}

	// 4. Генерация
	result, err := slotgen.Generate(req.TherapistID, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveGeneration(string(result.Outcome))
	}

	if err := validateResult(result); err != nil {
		uc.logger.Warn("GenerateSlots: nothing to persist: therapist_id=%d, outcome=%s, error=%v",
			req.TherapistID, result.Outcome, err)
		return nil, err
	}

	// 5. Сохранение
	saved, err := uc.slotService.SaveBatch(ctx, req.TherapistID, result.Slots)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to save slots: therapist_id=%d, error=%v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: failed to save slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Outcome: result.Outcome,
		Created: saved.Created,
		Ignored: saved.Ignored,
	}

	uc.storeReplay(ctx, req, fingerprint, resp)

	uc.logger.Info("GenerateSlots: therapist_id=%d, base_date=%s, dates=%d, times=%d, created=%d, ignored=%d",
		req.TherapistID, cfg.BaseDate.Format(domain.DateFormat), len(result.Dates), len(result.Times),
		len(resp.Created), len(resp.Ignored))

	return resp, nil
}

func (uc *UseCase) checkTherapist(ctx context.Context, therapistID int64) error {
	therapist, err := uc.therapistClient.GetTherapistWithGracefulDegradation(ctx, therapistID)
	switch {
	case errors.Is(err, therapistservice.ErrTherapistNotFound):
		return ErrTherapistNotFound
	case errors.Is(err, therapistservice.ErrServiceDegraded):
		uc.logger.Warn("GenerateSlots: therapist directory unavailable, skipping check: therapist_id=%d", therapistID)
		return nil
	case err != nil:
		return fmt.Errorf("%w: therapist check: %v", ErrInternal, err)
	case !therapist.IsActive:
		return ErrTherapistInactive
	}
	return nil
}

// loadReplay ошибки Redis не блокируют генерацию: повторный прогон идемпотентен на уровне БД.
// Ключ, сохраненный с другими параметрами, дает ErrIdempotencyKeyReused.
func (uc *UseCase) loadReplay(ctx context.Context, req *Request, fingerprint string) (*Response, bool, error) {
	if uc.idempotency == nil || req.IdempotencyKey == "" {
		return nil, false, nil
	}

	var stored storedResponse
	found, err := uc.idempotency.Load(ctx, req.TherapistID, req.IdempotencyKey, &stored)
	if err != nil {
		uc.logger.Warn("GenerateSlots: idempotency lookup failed: therapist_id=%d, key=%s, error=%v",
			req.TherapistID, req.IdempotencyKey, err)
		return nil, false, nil
	}
	if !found || stored.Response == nil {
		return nil, false, nil
	}

	if stored.Fingerprint != fingerprint {
		uc.logger.Warn("GenerateSlots: idempotency key reused with different schedule: therapist_id=%d, key=%s",
			req.TherapistID, req.IdempotencyKey)
		return nil, false, ErrIdempotencyKeyReused
	}

	uc.logger.Info("GenerateSlots: replaying stored response: therapist_id=%d, key=%s", req.TherapistID, req.IdempotencyKey)
	stored.Response.Replayed = true
	return stored.Response, true, nil
}

func (uc *UseCase) storeReplay(ctx context.Context, req *Request, fingerprint string, resp *Response) {
	if uc.idempotency == nil || req.IdempotencyKey == "" {
		return
	}

	stored := storedResponse{Fingerprint: fingerprint, Response: resp}
	if err := uc.idempotency.Save(ctx, req.TherapistID, req.IdempotencyKey, stored); err != nil {
		uc.logger.Warn("GenerateSlots: failed to store idempotent response: therapist_id=%d, key=%s, error=%v",
			req.TherapistID, req.IdempotencyKey, err)
	}
}

// requestFingerprint sha256 от параметров расписания в том виде, в каком их прислал клиент
func requestFingerprint(o slotgen.Overrides) (string, error) {
	raw, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
