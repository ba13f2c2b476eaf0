package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"healthbot/internal/domain"
)

const (
	focusQuestion = iota
	focusName
	focusDate
	focusCount
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Model is the Bubble Tea model for the single-page assistant UI:
// a symptom question form and an appointment form on one screen.
type Model struct {
	service domain.Assistant

	question textinput.Model
	name     textinput.Model
	date     textinput.Model
	focus    int

	answer     string
	answerNote string
	booking    string
	status     string
	width      int
}

// New creates the UI model over the assistant service.
func New(service domain.Assistant, catalogSize int) Model {
	q := textinput.New()
	q.Prompt = "> "
	q.Placeholder = "আপনার উপসর্গ বা প্রশ্ন লিখুন (বাংলায়)"
	q.CharLimit = 0
	q.Focus()

	n := textinput.New()
	n.Prompt = "> "
	n.Placeholder = "আপনার নাম"
	n.CharLimit = 200

	d := textinput.New()
	d.Prompt = "> "
	d.Placeholder = "অ্যাপয়েন্টমেন্টের তারিখ (YYYY-MM-DD)"
	d.CharLimit = 10

	return Model{
		service:  service,
		question: q,
		name:     n,
		date:     d,
		status:   fmt.Sprintf("%d টি উপসর্গ লোড হয়েছে। প্রশ্ন লিখে Enter চাপুন, Tab দিয়ে ফর্ম বদলান।", catalogSize),
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus - 1 + focusCount) % focusCount)
			return m, nil
		case "enter":
			if m.focus == focusQuestion {
				m.submitQuestion()
			} else {
				m.submitBooking()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	switch m.focus {
	case focusQuestion:
		m.question, cmd = m.question.Update(msg)
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusDate:
		m.date, cmd = m.date.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.focus = i
	inputs := []*textinput.Model{&m.question, &m.name, &m.date}
	for j, in := range inputs {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *Model) submitQuestion() {
	q := strings.TrimSpace(m.question.Value())
	if q == "" {
		m.status = warnStyle.Render("⚠️ দয়া করে আপনার প্রশ্ন লিখুন।")
		return
	}
	reply, err := m.service.Ask(q)
	if err != nil {
		m.status = warnStyle.Render("ত্রুটি: " + err.Error())
		return
	}
	m.answer = reply.Answer
	switch {
	case reply.RecordErr != nil:
		// The answer survives a failed log write.
		m.answerNote = warnStyle.Render("⚠️ চ্যাট লগ সংরক্ষণ ব্যর্থ: " + reply.RecordErr.Error())
	default:
		m.answerNote = okStyle.Render("✅ চ্যাট লগ সংরক্ষণ করা হয়েছে: " + reply.RecordPath)
	}
	m.status = okStyle.Render(fmt.Sprintf("মিল স্কোর: %.3f", reply.Score))
	m.question.SetValue("")
}

func (m *Model) submitBooking() {
	booking, err := m.service.Book(m.name.Value(), m.date.Value())
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		m.status = warnStyle.Render("⚠️ দয়া করে আপনার নাম লিখুন।")
		return
	case errors.Is(err, domain.ErrInvalidDate):
		m.status = warnStyle.Render("⚠️ তারিখ YYYY-MM-DD আকারে লিখুন।")
		return
	case err != nil:
		m.status = warnStyle.Render("ত্রুটি: " + err.Error())
		return
	}
	m.booking = okStyle.Render(fmt.Sprintf("✅ অ্যাপয়েন্টমেন্ট সফলভাবে বুক হয়েছে। (%s) — %s", booking.Date, booking.RecordPath))
	m.status = ""
	m.name.SetValue("")
	m.date.SetValue("")
}

// View renders both forms and the latest results.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("💊 স্বাস্থ্য সহায়ক স্মার্ট চ্যাটবট"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("রোগীর উপসর্গ অনুযায়ী স্বয়ংক্রিয় স্বাস্থ্য পরামর্শ"))
	b.WriteString("\n\n")

	section := sectionStyle
	if m.width > 4 {
		section = section.Width(m.width - 4)
	}

	ask := m.question.View()
	if m.answer != "" {
		ask += "\n\n" + labelStyle.Render("চ্যাটবট উত্তর:") + " " + answerStyle.Render(m.answer)
		if m.answerNote != "" {
			ask += "\n" + m.answerNote
		}
	}
	b.WriteString(section.Render(ask))
	b.WriteString("\n\n")

	book := labelStyle.Render("ডাক্তার অ্যাপয়েন্টমেন্ট বুক করুন") + "\n" + m.name.View() + "\n" + m.date.View()
	if m.booking != "" {
		book += "\n" + m.booking
	}
	b.WriteString(section.Render(book))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	return b.String()
}
