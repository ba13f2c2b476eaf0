package records

import "time"

// TimestampLayout matches the second-resolution stamps embedded in
// record filenames and stored in the CSV artifacts.
const TimestampLayout = "2006-01-02_15-04-05"

// Exchange is one logged question/answer pair.
type Exchange struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text"`
	Timestamp string `gorm:"size:32;index"`
	CreatedAt time.Time
}

// Appointment is one logged booking request.
type Appointment struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	Date         string `gorm:"size:32;index"` // YYYY-MM-DD
	RegisteredAt string `gorm:"size:32"`
	CreatedAt    time.Time
}
