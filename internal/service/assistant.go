package service

import (
	"fmt"
	"strings"
	"time"

	"healthbot/internal/domain"
	"healthbot/internal/records"
)

// AssistantImpl wires the matcher and the record log together behind
// the domain.Assistant interface. It holds no per-request state.
type AssistantImpl struct {
	matcher domain.Matcher
	store   *records.Store
	dir     string
	now     func() time.Time
}

// NewAssistant builds the assistant. dir is where downloadable CSV
// artifacts are written.
func NewAssistant(matcher domain.Matcher, store *records.Store, dir string) *AssistantImpl {
	return &AssistantImpl{matcher: matcher, store: store, dir: dir, now: time.Now}
}

// Ask matches a question against the catalog and logs the exchange.
// A logging failure is reported on the reply without discarding the
// computed answer.
func (a *AssistantImpl) Ask(question string) (domain.Reply, error) {
	if strings.TrimSpace(question) == "" {
		return domain.Reply{}, domain.ErrEmptyQuestion
	}
	result := a.matcher.Match(question)
	reply := domain.Reply{MatchResult: result}

	ts := a.now().Format(records.TimestampLayout)
	rec := records.Exchange{Question: question, Answer: result.Answer, Timestamp: ts}
	if err := a.store.SaveExchange(&rec); err != nil {
		reply.RecordErr = err
		return reply, nil
	}
	path, err := records.WriteExchangeCSV(a.dir, rec)
	if err != nil {
		reply.RecordErr = err
		return reply, nil
	}
	reply.RecordPath = path
	return reply, nil
}

// Book registers an appointment. The booking is accepted
// unconditionally once the name is non-empty and the date parses;
// there is no conflict checking.
func (a *AssistantImpl) Book(name, date string) (domain.Booking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Booking{}, domain.ErrEmptyName
	}
	date = strings.TrimSpace(date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.Booking{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}

	ts := a.now().Format(records.TimestampLayout)
	rec := records.Appointment{Name: name, Date: date, RegisteredAt: ts}
	if err := a.store.SaveAppointment(&rec); err != nil {
		return domain.Booking{}, err
	}
	path, err := records.WriteAppointmentCSV(a.dir, rec)
	if err != nil {
		return domain.Booking{}, err
	}
	return domain.Booking{Name: name, Date: date, RecordPath: path}, nil
}

// Exchanges reads the exchange log back in insertion order.
func (a *AssistantImpl) Exchanges() ([]domain.ExchangeRecord, error) {
	rows, err := a.store.ListExchanges()
	if err != nil {
		return nil, err
	}
	out := make([]domain.ExchangeRecord, len(rows))
	for i, r := range rows {
		out[i] = domain.ExchangeRecord{Question: r.Question, Answer: r.Answer, Timestamp: r.Timestamp}
	}
	return out, nil
}

// Appointments reads the appointment log back in insertion order.
func (a *AssistantImpl) Appointments() ([]domain.AppointmentRecord, error) {
	rows, err := a.store.ListAppointments()
	if err != nil {
		return nil, err
	}
	out := make([]domain.AppointmentRecord, len(rows))
	for i, r := range rows {
		out[i] = domain.AppointmentRecord{Name: r.Name, Date: r.Date, SubmittedAt: r.RegisteredAt}
	}
	return out, nil
}
