package booking_flow

import (
	"context"

	bookingFlow "github.com/m04kA/SMC-ProfileService/internal/usecase/booking_flow"
)

type BookingFlowUseCase interface {
	Start(ctx context.Context, businessID string) (*bookingFlow.Response, error)
	Get(ctx context.Context, flowID string) (*bookingFlow.Response, error)
	Dispatch(ctx context.Context, flowID string, event bookingFlow.Event) (*bookingFlow.Response, error)
	CalendarICS(ctx context.Context, flowID string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
