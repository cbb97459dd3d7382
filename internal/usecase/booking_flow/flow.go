package booking_flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/calendar"
	"github.com/m04kA/SMC-ProfileService/internal/service/render"
	"github.com/m04kA/SMC-ProfileService/pkg/types"
)

// NewFlow создает сценарий на шаге selection. В список услуг попадают только
// опубликованные позиции каталога с типом service. Дата по умолчанию - сегодня
// в часовом поясе бизнеса.
func NewFlow(id string, business domain.Business, products []domain.Product, now time.Time) *Flow {
	snapshot := BusinessSnapshot{
		ID:       business.ID,
		Name:     business.Name,
		Address:  strings.Join(render.AddressLines(business.Address), ", "),
		Timezone: business.Timezone,
		Currency: business.Currency,
	}
	if snapshot.Timezone == "" {
		snapshot.Timezone = domain.DefaultTimezone
	}

	listed := render.FilterCatalog(products, domain.PageTypeBookings)
	services := make([]ServiceOption, 0, len(listed))
	for i := range listed {
		services = append(services, ServiceOption{
			ID:       listed[i].ID,
			Name:     listed[i].Name,
			Price:    listed[i].Offers.Price,
			Currency: listed[i].Offers.PriceCurrency,
			Duration: listed[i].DurationOrDefault(),
		})
	}

	if snapshot.Currency == "" {
		snapshot.Currency = domain.DefaultCurrency
		if len(services) > 0 && services[0].Currency != "" {
			snapshot.Currency = services[0].Currency
		}
	}

	return &Flow{
		ID:                 id,
		Business:           snapshot,
		Step:               StepSelection,
		Services:           services,
		SelectedServiceIDs: []string{},
		Date:               now.In(location(snapshot.Timezone)).Format(domain.DateFormat),
		Use24h:             true,
	}
}

// ToggleService добавляет услугу в выбор или убирает из него
func (f *Flow) ToggleService(serviceID string) error {
	if f.Step != StepSelection {
		return fmt.Errorf("%w: toggle service on step %s", ErrInvalidTransition, f.Step)
	}
	if _, ok := f.service(serviceID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownService, serviceID)
	}

	for i, id := range f.SelectedServiceIDs {
		if id == serviceID {
			f.SelectedServiceIDs = append(f.SelectedServiceIDs[:i:i], f.SelectedServiceIDs[i+1:]...)
			return nil
		}
	}
	f.SelectedServiceIDs = append(f.SelectedServiceIDs, serviceID)
	return nil
}

// Next переход вперёд. selection -> datetime не проверяет выбор услуг:
// кнопка "Далее" активна только при выбранной услуге, это проверка клиента.
// datetime -> details требует выбранного слота. На details переход вперёд - только Submit.
func (f *Flow) Next() error {
	switch f.Step {
	case StepSelection:
		f.Step = StepDateTime
	case StepDateTime:
		if f.Slot.IsZero() {
			return ErrSlotRequired
		}
		f.Step = StepDetails
	default:
		return fmt.Errorf("%w: next on step %s", ErrInvalidTransition, f.Step)
	}
	f.LastError = ""
	return nil
}

// Back переход на шаг назад: datetime -> selection, details -> datetime
func (f *Flow) Back() error {
	switch f.Step {
	case StepDateTime:
		f.Step = StepSelection
	case StepDetails:
		if f.Submitting {
			return ErrSubmissionInFlight
		}
		f.Step = StepDateTime
	default:
		return fmt.Errorf("%w: back on step %s", ErrInvalidTransition, f.Step)
	}
	f.LastError = ""
	return nil
}

// SelectDate выбирает день. Выбранный слот не сбрасывается.
func (f *Flow) SelectDate(date string) error {
	if f.Step != StepDateTime {
		return fmt.Errorf("%w: select date on step %s", ErrInvalidTransition, f.Step)
	}
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}
	f.Date = parsed.Format(domain.DateFormat)
	return nil
}

// SelectSlot выбирает время начала из сетки слотов
func (f *Flow) SelectSlot(slot string) error {
	if f.Step != StepDateTime {
		return fmt.Errorf("%w: select slot on step %s", ErrInvalidTransition, f.Step)
	}
	value, err := types.NewTimeStringFromString(slot)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	for _, candidate := range f.Slots() {
		if candidate == value {
			f.Slot = value
			return nil
		}
	}
	return fmt.Errorf("%w: slot %s is outside the schedule", ErrValidation, value)
}

// SetDetails сохраняет данные клиента. Проверка выполняется при отправке.
func (f *Flow) SetDetails(details CustomerDetails) error {
	if f.Step != StepDetails {
		return fmt.Errorf("%w: set details on step %s", ErrInvalidTransition, f.Step)
	}
	f.Details = details
	return nil
}

// SetTimeFormat переключает отображение времени (24h / 12h)
func (f *Flow) SetTimeFormat(use24h bool) {
	f.Use24h = use24h
}

// Submit отправляет бронирование во внешний API и при успехе переводит сценарий
// на confirmation. При ошибке проверки API не вызывается; при ошибке API сценарий
// остаётся на details с LastError. Повторов нет.
func (f *Flow) Submit(ctx context.Context, creator BookingCreator) error {
	if f.Step != StepDetails {
		return fmt.Errorf("%w: submit on step %s", ErrInvalidTransition, f.Step)
	}
	if f.Submitting {
		return ErrSubmissionInFlight
	}

	if err := validateDetails(f.Details); err != nil {
		f.LastError = err.Error()
		return err
	}

	booking, err := f.bookingRequest()
	if err != nil {
		f.LastError = err.Error()
		return err
	}

	f.Submitting = true
	created, err := creator.CreateBooking(ctx, booking)
	f.Submitting = false

	if err != nil {
		f.LastError = "Could not create the booking, please try again"
		return fmt.Errorf("%w: create booking: %v", ErrRemoteFailure, err)
	}

	f.BookingID = created.ID
	f.ConfirmedAt = created.CreatedAt.UTC()
	f.LastError = ""
	f.Step = StepConfirmation
	return nil
}

// BookAnother начинает новую запись: confirmation -> selection с пустым выбором
func (f *Flow) BookAnother() error {
	if f.Step != StepConfirmation {
		return fmt.Errorf("%w: book another on step %s", ErrInvalidTransition, f.Step)
	}
	f.Step = StepSelection
	f.SelectedServiceIDs = []string{}
	f.Slot = ""
	f.Details = CustomerDetails{}
	f.BookingID = ""
	f.ConfirmedAt = time.Time{}
	f.LastError = ""
	return nil
}

// Reschedule возвращает к выбору времени: confirmation -> datetime, услуги и данные клиента сохраняются
func (f *Flow) Reschedule() error {
	if f.Step != StepConfirmation {
		return fmt.Errorf("%w: reschedule on step %s", ErrInvalidTransition, f.Step)
	}
	f.Step = StepDateTime
	f.Slot = ""
	f.BookingID = ""
	f.ConfirmedAt = time.Time{}
	f.LastError = ""
	return nil
}

// Slots сетка слотов для выбранного дня
func (f *Flow) Slots() []types.TimeString {
	return DaySlots()
}

// SelectedServices выбранные услуги в порядке выбора
func (f *Flow) SelectedServices() []ServiceOption {
	out := make([]ServiceOption, 0, len(f.SelectedServiceIDs))
	for _, id := range f.SelectedServiceIDs {
		if s, ok := f.service(id); ok {
			out = append(out, s)
		}
	}
	return out
}

// TotalDuration суммарная длительность выбранных услуг в минутах
func (f *Flow) TotalDuration() int {
	total := 0
	for _, s := range f.SelectedServices() {
		if s.Duration > 0 {
			total += s.Duration
		} else {
			total += domain.DefaultServiceDurationMinutes
		}
	}
	return total
}

// TotalPrice суммарная стоимость выбранных услуг
func (f *Flow) TotalPrice() float64 {
	total := 0.0
	for _, s := range f.SelectedServices() {
		total += s.Price
	}
	return total
}

// EndTime время окончания: начало слота плюс суммарная длительность по модулю суток.
// Записи через полночь получают время окончания следующих суток без смены даты.
func (f *Flow) EndTime() (types.TimeString, bool) {
	if f.Slot.IsZero() {
		return "", false
	}
	end, err := f.Slot.AddMinutesWrapped(f.TotalDuration())
	if err != nil {
		return "", false
	}
	return end, true
}

// Calendar ссылки Google/Outlook и .ics для подтверждённой записи.
// Считается только из собранного состояния, без сетевых вызовов.
func (f *Flow) Calendar() (CalendarLinks, error) {
	if f.Step != StepConfirmation {
		return CalendarLinks{}, ErrNotConfirmed
	}

	event, err := f.calendarEvent()
	if err != nil {
		return CalendarLinks{}, err
	}

	return CalendarLinks{
		Google:  calendar.GoogleCalendarURL(event),
		Outlook: calendar.OutlookCalendarURL(event),
		ICS:     calendar.ICS(event),
	}, nil
}

func (f *Flow) calendarEvent() (calendar.Event, error) {
	start, err := f.startAt()
	if err != nil {
		return calendar.Event{}, err
	}

	names := make([]string, 0, len(f.SelectedServiceIDs))
	for _, s := range f.SelectedServices() {
		names = append(names, s.Name)
	}
	title := strings.Join(names, ", ")
	if f.Business.Name != "" {
		title += " at " + f.Business.Name
	}

	description := "Booking with " + f.Business.Name
	if len(names) > 0 {
		description += "\nServices: " + strings.Join(names, ", ")
	}
	if f.Details.Notes != "" {
		description += "\nNotes: " + f.Details.Notes
	}

	return calendar.Event{
		UID:         f.BookingID + "@smc-profile",
		Title:       title,
		Description: description,
		Location:    f.Business.Address,
		Start:       start,
		End:         start.Add(time.Duration(f.TotalDuration()) * time.Minute),
		Stamp:       f.ConfirmedAt,
	}, nil
}

// startAt дата и слот в часовом поясе бизнеса
func (f *Flow) startAt() (time.Time, error) {
	loc := location(f.Business.Timezone)
	date, err := time.ParseInLocation(domain.DateFormat, f.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, f.Date)
	}
	minutes, err := f.Slot.Minutes()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrSlotRequired, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

// bookingRequest запрос к API бронирований. Отправляется только первая выбранная услуга,
// длительность и цена считаются по всем выбранным.
func (f *Flow) bookingRequest() (*domain.Booking, error) {
	if len(f.SelectedServiceIDs) == 0 {
		return nil, fmt.Errorf("%w: no service selected", ErrValidation)
	}
	if f.Slot.IsZero() {
		return nil, ErrSlotRequired
	}
	date, err := time.Parse(domain.DateFormat, f.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, f.Date)
	}
	end, _ := f.EndTime()

	return &domain.Booking{
		BusinessID:    f.Business.ID,
		ServiceID:     f.SelectedServiceIDs[0],
		CustomerName:  strings.TrimSpace(f.Details.Name),
		CustomerEmail: strings.TrimSpace(f.Details.Email),
		CustomerPhone: strings.TrimSpace(f.Details.Phone),
		Date:          date,
		StartTime:     f.Slot,
		EndTime:       end,
		TotalPrice:    f.TotalPrice(),
		Currency:      f.Business.Currency,
		Notes:         f.Details.Notes,
		Status:        domain.StatusPending,
	}, nil
}

func (f *Flow) service(id string) (ServiceOption, bool) {
	for _, s := range f.Services {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceOption{}, false
}

// location часовой пояс бизнеса; неизвестное имя - UTC
func location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
