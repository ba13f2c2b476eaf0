package records

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"healthbot/internal/domain"
)

// Column headers of the downloadable artifacts, matching the
// catalog's language.
var (
	exchangeHeader    = []string{"রোগীর প্রশ্ন", "চ্যাটবট উত্তর", "সময়"}
	appointmentHeader = []string{"নাম", "অ্যাপয়েন্টমেন্ট তারিখ", "রেজিস্টার সময়"}
)

// WriteExchangeCSV writes one exchange as a standalone CSV artifact
// and returns its path. The filename embeds the timestamp plus a
// short unique suffix so same-second submissions get distinct files.
func WriteExchangeCSV(dir string, e Exchange) (string, error) {
	name := fmt.Sprintf("chat_log_%s_%s.csv", e.Timestamp, shortID())
	return writeCSV(dir, name, exchangeHeader, []string{e.Question, e.Answer, e.Timestamp})
}

// WriteAppointmentCSV writes one appointment as a standalone CSV
// artifact and returns its path.
func WriteAppointmentCSV(dir string, a Appointment) (string, error) {
	name := fmt.Sprintf("appointment_%s_%s.csv", a.RegisteredAt, shortID())
	return writeCSV(dir, name, appointmentHeader, []string{a.Name, a.Date, a.RegisteredAt})
}

func writeCSV(dir, name string, header, row []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", domain.ErrPersistence, dir, err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %v", domain.ErrPersistence, path, err)
	}
	w := csv.NewWriter(f)
	_ = w.Write(header)
	_ = w.Write(row)
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %v", domain.ErrPersistence, path, err)
	}
	return path, nil
}

// ReadExchangeCSV reads back a single-exchange artifact.
func ReadExchangeCSV(path string) (Exchange, error) {
	rows, err := readCSV(path)
	if err != nil {
		return Exchange{}, err
	}
	return Exchange{Question: rows[0], Answer: rows[1], Timestamp: rows[2]}, nil
}

// ReadAppointmentCSV reads back a single-appointment artifact.
func ReadAppointmentCSV(path string) (Appointment, error) {
	rows, err := readCSV(path)
	if err != nil {
		return Appointment{}, err
	}
	return Appointment{Name: rows[0], Date: rows[1], RegisteredAt: rows[2]}, nil
}

func readCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrPersistence, path, err)
	}
	defer f.Close()
	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, path, err)
	}
	if len(all) < 2 || len(all[1]) < 3 {
		return nil, fmt.Errorf("%w: %s is not a record artifact", domain.ErrPersistence, path)
	}
	return all[1], nil
}

func shortID() string {
	return uuid.NewString()[:8]
}
