// internal/domain/record/record.go
package record

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the on-disk format of every stored date.
const DateLayout = "2006-01-02"

var ErrStorageUnavailable = errors.New("record store unavailable")
var ErrInvalidDate = errors.New("invalid date")
var ErrAlreadyExists = errors.New("record store already initialized")
var ErrNotFound = errors.New("record not found")
var ErrInvalidSettings = errors.New("invalid settings")

// Settings controls how the reminder engine behaves.
// Repeat is persisted for the editing tools but not read by the engine.
type Settings struct {
	Photo         bool `json:"photo"`
	Repeat        bool `json:"repeat"`
	CountdownDays int  `json:"countdown_days"`
}

// DefaultSettings are written when the store is initialized.
func DefaultSettings() Settings {
	return Settings{Photo: true, Repeat: false, CountdownDays: 1}
}

func (s Settings) Validate() error {
	if s.CountdownDays < 0 {
		return fmt.Errorf("%w: countdown_days must not be negative, got %d", ErrInvalidSettings, s.CountdownDays)
	}
	return nil
}

// Dates maps a unique key (contact name or anniversary subject) to a calendar date.
// Only month and day drive recurrence; the year is informational.
type Dates map[string]time.Time

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return d, nil
}

// ParseDates converts a raw key->string mapping, failing on the first bad date.
func ParseDates(raw map[string]string) (Dates, error) {
	out := make(Dates, len(raw))
	for key, value := range raw {
		d, err := ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		out[key] = d
	}
	return out, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
