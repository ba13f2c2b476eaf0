package tui

import (
	"strings"
	"testing"

	"healthbot/internal/domain"
)

type fakeAssistant struct {
	askCalls  int
	bookCalls int
	reply     domain.Reply
	bookErr   error
}

func (f *fakeAssistant) Ask(question string) (domain.Reply, error) {
	f.askCalls++
	return f.reply, nil
}

func (f *fakeAssistant) Book(name, date string) (domain.Booking, error) {
	f.bookCalls++
	if f.bookErr != nil {
		return domain.Booking{}, f.bookErr
	}
	return domain.Booking{Name: name, Date: date, RecordPath: "chat_logs/appointment_x.csv"}, nil
}

func (f *fakeAssistant) Exchanges() ([]domain.ExchangeRecord, error)       { return nil, nil }
func (f *fakeAssistant) Appointments() ([]domain.AppointmentRecord, error) { return nil, nil }

func TestEmptyQuestionWarnsWithoutAsking(t *testing.T) {
	fake := &fakeAssistant{}
	m := New(fake, 2)
	m.question.SetValue("   ")
	m.submitQuestion()
	if fake.askCalls != 0 {
		t.Fatalf("service must not be asked for a blank question")
	}
	if !strings.Contains(m.status, "প্রশ্ন") {
		t.Fatalf("expected inline warning, got %q", m.status)
	}
}

func TestQuestionShowsAnswerAndRecordPath(t *testing.T) {
	fake := &fakeAssistant{reply: domain.Reply{
		MatchResult: domain.MatchResult{BestIndex: 0, Score: 0.8, Answer: "বিশ্রাম নিন"},
		RecordPath:  "chat_logs/chat_log_x.csv",
	}}
	m := New(fake, 2)
	m.question.SetValue("মাথা ব্যথা")
	m.submitQuestion()
	if fake.askCalls != 1 {
		t.Fatalf("expected one ask, got %d", fake.askCalls)
	}
	view := m.View()
	if !strings.Contains(view, "বিশ্রাম নিন") {
		t.Fatalf("answer missing from view")
	}
	if !strings.Contains(view, "chat_log_x.csv") {
		t.Fatalf("record path missing from view")
	}
}

func TestLoggingFailureStillShowsAnswer(t *testing.T) {
	fake := &fakeAssistant{reply: domain.Reply{
		MatchResult: domain.MatchResult{BestIndex: 0, Score: 0.8, Answer: "বিশ্রাম নিন"},
		RecordErr:   domain.ErrPersistence,
	}}
	m := New(fake, 2)
	m.question.SetValue("মাথা ব্যথা")
	m.submitQuestion()
	view := m.View()
	if !strings.Contains(view, "বিশ্রাম নিন") {
		t.Fatalf("answer must survive a failed log write")
	}
	if !strings.Contains(view, "ব্যর্থ") {
		t.Fatalf("expected a persistence warning in view")
	}
}

func TestEmptyNameWarns(t *testing.T) {
	fake := &fakeAssistant{bookErr: domain.ErrEmptyName}
	m := New(fake, 2)
	m.date.SetValue("2026-09-15")
	m.submitBooking()
	if !strings.Contains(m.status, "নাম") {
		t.Fatalf("expected name warning, got %q", m.status)
	}
}

func TestBookingShowsConfirmation(t *testing.T) {
	fake := &fakeAssistant{}
	m := New(fake, 2)
	m.name.SetValue("করিম")
	m.date.SetValue("2026-09-15")
	m.submitBooking()
	if fake.bookCalls != 1 {
		t.Fatalf("expected one booking call, got %d", fake.bookCalls)
	}
	if !strings.Contains(m.View(), "appointment_x.csv") {
		t.Fatalf("confirmation missing from view")
	}
}
