package domain

// CatalogEntry is one row of the symptom catalog: a reference phrase
// and the advice returned when a question matches it.
type CatalogEntry struct {
	Phrase string
	Answer string
}

// MatchResult is the outcome of scoring one question against the catalog.
// BestIndex is -1 when no entry cleared the confidence threshold.
type MatchResult struct {
	BestIndex int
	Score     float64
	Answer    string
}

// Matched reports whether a catalog entry cleared the threshold.
func (r MatchResult) Matched() bool { return r.BestIndex >= 0 }

// Reply is what the assistant hands back for a question: the match
// outcome plus the persisted record. RecordErr is non-nil when logging
// failed; the answer is still valid in that case.
type Reply struct {
	MatchResult
	RecordPath string
	RecordErr  error
}

// Booking is the result of a successful appointment registration.
type Booking struct {
	Name       string
	Date       string
	RecordPath string
}

// ExchangeRecord is one persisted question/answer exchange.
type ExchangeRecord struct {
	Question  string
	Answer    string
	Timestamp string
}

// AppointmentRecord is one persisted appointment registration.
type AppointmentRecord struct {
	Name        string
	Date        string
	SubmittedAt string
}

// Vectorizer maps free text into a fixed numeric vector space.
// The space is built once from the catalog phrases and never refit.
type Vectorizer interface {
	Dimension() int
	Project(text string) []float64
}

// Matcher scores a question against every catalog phrase and returns
// either the best entry's answer or a fallback.
type Matcher interface {
	Match(text string) MatchResult
}

// Assistant is the UI-facing surface of the application core.
type Assistant interface {
	Ask(question string) (Reply, error)
	Book(name, date string) (Booking, error)
	Exchanges() ([]ExchangeRecord, error)
	Appointments() ([]AppointmentRecord, error)
}
