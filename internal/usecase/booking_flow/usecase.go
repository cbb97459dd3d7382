package booking_flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	businessRepo "github.com/m04kA/SMC-ProfileService/internal/infra/storage/business"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/flowsession"
)

// UseCase use case сценария записи: хранит состояние между запросами и применяет события
type UseCase struct {
	businessRepo BusinessRepository
	catalog      CatalogClient
	creator      BookingCreator
	sessions     SessionStore
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	newID        func() string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	catalog CatalogClient,
	creator BookingCreator,
	sessions SessionStore,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		catalog:      catalog,
		creator:      creator,
		sessions:     sessions,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		newID:        uuid.NewString,
	}
}

// Start создает сценарий записи для бизнеса
func (uc *UseCase) Start(ctx context.Context, businessID string) (*Response, error) {
	uc.logger.Info("BookingFlow.Start: business=%s", businessID)

	// 1. Получаем профиль бизнеса
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("BookingFlow.Start: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("BookingFlow.Start: failed to get business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 2. Получаем каталог услуг
	products, err := uc.catalog.GetProducts(ctx, businessID)
	if err != nil {
		uc.logger.Error("BookingFlow.Start: failed to get catalog for business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrRemoteFailure, err)
	}

	// 3. Создаем и сохраняем сценарий
	flow := NewFlow(uc.newID(), *business, products, uc.timeProvider.Now())
	if err := uc.save(ctx, flow); err != nil {
		return nil, err
	}

	uc.logger.Info("BookingFlow.Start: flow=%s created with %d services", flow.ID, len(flow.Services))
	return uc.response(flow), nil
}

// Get возвращает текущее состояние сценария
func (uc *UseCase) Get(ctx context.Context, flowID string) (*Response, error) {
	flow, err := uc.load(ctx, flowID)
	if err != nil {
		return nil, err
	}
	return uc.response(flow), nil
}

// Dispatch применяет событие к сценарию и сохраняет результат.
// При ошибке перехода состояние тоже возвращается: клиент показывает LastError.
func (uc *UseCase) Dispatch(ctx context.Context, flowID string, event Event) (*Response, error) {
	uc.logger.Info("BookingFlow.Dispatch: flow=%s, event=%s", flowID, event.Type)

	if event.Type == EventSubmit {
		return uc.submit(ctx, flowID)
	}

	// 1. Загружаем состояние
	flow, err := uc.load(ctx, flowID)
	if err != nil {
		return nil, err
	}

	// 2. Применяем событие
	applyErr := apply(flow, event)
	if applyErr != nil {
		uc.logger.Warn("BookingFlow.Dispatch: flow=%s, event=%s rejected: %v", flowID, event.Type, applyErr)
	}

	// 3. Сохраняем
	if err := uc.save(ctx, flow); err != nil {
		return nil, err
	}

	return uc.response(flow), applyErr
}

// CalendarICS возвращает .ics подтверждённой записи
func (uc *UseCase) CalendarICS(ctx context.Context, flowID string) (string, error) {
	flow, err := uc.load(ctx, flowID)
	if err != nil {
		return "", err
	}

	links, err := flow.Calendar()
	if err != nil {
		return "", err
	}
	return links.ICS, nil
}

// submit отправка под блокировкой хранилища. Сценарий читается и сохраняется
// внутри блокировки: второй запрос увидит уже подтверждённое состояние.
func (uc *UseCase) submit(ctx context.Context, flowID string) (*Response, error) {
	// 1. Берём блокировку отправки
	acquired, err := uc.sessions.AcquireSubmitLock(ctx, flowID)
	if err != nil {
		uc.logger.Error("BookingFlow.submit: failed to acquire lock for flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: acquire submit lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("BookingFlow.submit: flow=%s already submitting", flowID)
		flow, err := uc.load(ctx, flowID)
		if err != nil {
			return nil, err
		}
		return uc.response(flow), ErrSubmissionInFlight
	}
	defer func() {
		if err := uc.sessions.ReleaseSubmitLock(ctx, flowID); err != nil {
			uc.logger.Warn("BookingFlow.submit: failed to release lock for flow=%s: %v", flowID, err)
		}
	}()

	// 2. Читаем актуальное состояние уже под блокировкой
	flow, err := uc.load(ctx, flowID)
	if err != nil {
		return nil, err
	}

	// 3. Отправляем
	submitErr := flow.Submit(ctx, uc.creator)
	switch {
	case submitErr == nil:
		if flow.ConfirmedAt.IsZero() {
			flow.ConfirmedAt = uc.timeProvider.Now().UTC()
		}
		uc.logger.Info("BookingFlow.submit: flow=%s confirmed, booking=%s", flow.ID, flow.BookingID)
	case errors.Is(submitErr, ErrRemoteFailure):
		uc.metrics.IncBookingSubmissionFailed("remote")
		uc.logger.Error("BookingFlow.submit: flow=%s: %v", flow.ID, submitErr)
	case errors.Is(submitErr, ErrValidation):
		uc.metrics.IncBookingSubmissionFailed("validation")
		uc.logger.Warn("BookingFlow.submit: flow=%s rejected: %v", flow.ID, submitErr)
	default:
		uc.logger.Warn("BookingFlow.submit: flow=%s rejected: %v", flow.ID, submitErr)
	}

	// 4. Сохраняем до снятия блокировки (в том числе LastError после неудачной отправки)
	if err := uc.save(ctx, flow); err != nil {
		return nil, err
	}

	return uc.response(flow), submitErr
}

// apply применяет к сценарию все события, кроме submit
func apply(flow *Flow, event Event) error {
	switch event.Type {
	case EventToggleService:
		return flow.ToggleService(event.ServiceID)
	case EventNext:
		return flow.Next()
	case EventBack:
		return flow.Back()
	case EventSelectDate:
		return flow.SelectDate(event.Date)
	case EventSelectSlot:
		return flow.SelectSlot(event.Slot)
	case EventSetDetails:
		if event.Details == nil {
			return fmt.Errorf("%w: details are required", ErrValidation)
		}
		return flow.SetDetails(*event.Details)
	case EventBookAnother:
		return flow.BookAnother()
	case EventReschedule:
		return flow.Reschedule()
	case EventSetTimeFormat:
		if event.Use24h == nil {
			return fmt.Errorf("%w: use24h is required", ErrValidation)
		}
		flow.SetTimeFormat(*event.Use24h)
		return nil
	default:
		return fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, event.Type)
	}
}

func (uc *UseCase) load(ctx context.Context, flowID string) (*Flow, error) {
	data, err := uc.sessions.Load(ctx, flowID)
	if err != nil {
		if errors.Is(err, flowsession.ErrNotFound) {
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("BookingFlow: failed to load flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: load flow: %v", ErrInternal, err)
	}

	var flow Flow
	if err := json.Unmarshal(data, &flow); err != nil {
		uc.logger.Error("BookingFlow: corrupted flow=%s: %v", flowID, err)
		return nil, fmt.Errorf("%w: decode flow: %v", ErrInternal, err)
	}
	return &flow, nil
}

func (uc *UseCase) save(ctx context.Context, flow *Flow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("%w: encode flow: %v", ErrInternal, err)
	}
	if err := uc.sessions.Store(ctx, flow.ID, data); err != nil {
		uc.logger.Error("BookingFlow: failed to store flow=%s: %v", flow.ID, err)
		return fmt.Errorf("%w: store flow: %v", ErrInternal, err)
	}
	return nil
}

// response состояние с производными значениями для клиента
func (uc *UseCase) response(flow *Flow) *Response {
	resp := &Response{
		Flow:          flow,
		TotalDuration: flow.TotalDuration(),
		TotalPrice:    flow.TotalPrice(),
	}

	slots := flow.Slots()
	resp.Slots = make([]SlotOption, 0, len(slots))
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, SlotOption{
			Value:    slot,
			Label:    FormatTime(slot, flow.Use24h),
			Selected: slot == flow.Slot,
		})
	}

	if end, ok := flow.EndTime(); ok {
		resp.EndTime = FormatTime(end, flow.Use24h)
	}

	if links, err := flow.Calendar(); err == nil {
		resp.Calendar = &links
	}

	return resp
}
