package records

import (
	"fmt"
	"os"
	"path/filepath"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"healthbot/internal/domain"
)

// Store is the append-only durable log of exchanges and appointments.
// Rows carry real auto-increment keys, so two submissions in the same
// second never collide the way timestamp-named files would.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite log at path and migrates the
// record tables.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", domain.ErrPersistence, dir, err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %s: %v", domain.ErrPersistence, path, err)
	}
	if err := db.AutoMigrate(&Exchange{}, &Appointment{}); err != nil {
		return nil, fmt.Errorf("%w: automigrate: %v", domain.ErrPersistence, err)
	}
	return &Store{db: db}, nil
}

// SaveExchange appends one exchange row.
func (s *Store) SaveExchange(e *Exchange) error {
	if err := s.db.Create(e).Error; err != nil {
		return fmt.Errorf("%w: save exchange: %v", domain.ErrPersistence, err)
	}
	return nil
}

// SaveAppointment appends one appointment row.
func (s *Store) SaveAppointment(a *Appointment) error {
	if err := s.db.Create(a).Error; err != nil {
		return fmt.Errorf("%w: save appointment: %v", domain.ErrPersistence, err)
	}
	return nil
}

// ListExchanges returns all exchanges in insertion order.
func (s *Store) ListExchanges() ([]Exchange, error) {
	var out []Exchange
	if err := s.db.Order("id asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: list exchanges: %v", domain.ErrPersistence, err)
	}
	return out, nil
}

// ListAppointments returns all appointments in insertion order.
func (s *Store) ListAppointments() ([]Appointment, error) {
	var out []Appointment
	if err := s.db.Order("id asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: list appointments: %v", domain.ErrPersistence, err)
	}
	return out, nil
}
