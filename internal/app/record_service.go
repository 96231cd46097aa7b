package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"birthday_reminder/internal/domain/record"
)

// Application-level errors for editing records
var ErrEmptyKey = fmt.Errorf("name or subject must not be empty")

// Entry is a key and its stored date, for listings.
type Entry struct {
	Key  string
	Date string
}

type RecordService struct {
	store record.Store
}

func NewRecordService(store record.Store) *RecordService {
	return &RecordService{store: store}
}

// Init creates the store with default settings.
func (s *RecordService) Init(ctx context.Context) error {
	if err := s.store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize record store: %w", err)
	}
	return nil
}

// AddBirthday stores or replaces a contact's date of birth.
func (s *RecordService) AddBirthday(ctx context.Context, name, dateOfBirth string) error {
	name, err := normalizeKey(name)
	if err != nil {
		return err
	}
	if _, err := record.ParseDate(dateOfBirth); err != nil {
		return err
	}
	if err := s.store.AddContact(ctx, name, dateOfBirth); err != nil {
		return fmt.Errorf("failed to add contact %q: %w", name, err)
	}
	return nil
}

// AddAnniversary stores or replaces an anniversary.
func (s *RecordService) AddAnniversary(ctx context.Context, subject, date string) error {
	subject, err := normalizeKey(subject)
	if err != nil {
		return err
	}
	if _, err := record.ParseDate(date); err != nil {
		return err
	}
	if err := s.store.AddAnniversary(ctx, subject, date); err != nil {
		return fmt.Errorf("failed to add anniversary %q: %w", subject, err)
	}
	return nil
}

func (s *RecordService) RemoveBirthday(ctx context.Context, name string) error {
	name, err := normalizeKey(name)
	if err != nil {
		return err
	}
	return s.store.RemoveContact(ctx, name)
}

func (s *RecordService) RemoveAnniversary(ctx context.Context, subject string) error {
	subject, err := normalizeKey(subject)
	if err != nil {
		return err
	}
	return s.store.RemoveAnniversary(ctx, subject)
}

func (s *RecordService) Settings(ctx context.Context) (record.Settings, error) {
	return s.store.GetSettings(ctx)
}

// UpdateSettings applies fn to the current settings and saves the result.
func (s *RecordService) UpdateSettings(ctx context.Context, fn func(*record.Settings)) (record.Settings, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return record.Settings{}, err
	}
	fn(&settings)
	if err := settings.Validate(); err != nil {
		return record.Settings{}, err
	}
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return record.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}

// List returns contacts and anniversaries sorted by key.
func (s *RecordService) List(ctx context.Context) (contacts, anniversaries []Entry, err error) {
	c, err := s.store.GetContacts(ctx)
	if err != nil {
		return nil, nil, err
	}
	a, err := s.store.GetAnniversaries(ctx)
	if err != nil {
		return nil, nil, err
	}
	return toEntries(c), toEntries(a), nil
}

func toEntries(dates record.Dates) []Entry {
	entries := make([]Entry, 0, len(dates))
	for key, d := range dates {
		entries = append(entries, Entry{Key: key, Date: record.FormatDate(d)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyKey
	}
	return key, nil
}
