// Package storage keeps reminder records in a single JSON document on disk.
//
// The document has three sections:
//
//	{
//	  "settings": {"photo": true, "repeat": false, "countdown_days": 1},
//	  "contacts": {"Alice": "1990-06-15"},
//	  "anniversaries": {"Wedding": "2010-06-20"}
//	}
//
// Every read loads the file again; nothing is cached between calls.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"birthday_reminder/internal/domain/record"
)

type document struct {
	Settings      *record.Settings  `json:"settings"`
	Contacts      map[string]string `json:"contacts"`
	Anniversaries map[string]string `json:"anniversaries"`
}

// JSONStore implements record.Store on top of a JSON file.
type JSONStore struct {
	path      string
	photosDir string
}

func NewJSONStore(path, photosDir string) *JSONStore {
	return &JSONStore{path: path, photosDir: photosDir}
}

func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", record.ErrStorageUnavailable, s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", record.ErrStorageUnavailable, s.path, err)
	}
	if doc.Settings == nil {
		return nil, fmt.Errorf("%w: %s has no settings section", record.ErrStorageUnavailable, s.path)
	}
	if doc.Contacts == nil {
		doc.Contacts = make(map[string]string)
	}
	if doc.Anniversaries == nil {
		doc.Anniversaries = make(map[string]string)
	}
	return &doc, nil
}

// save writes through a temp file in the same directory so a crash never leaves
// a truncated document behind.
func (s *JSONStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".data-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

func (s *JSONStore) update(fn func(doc *document) error) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *JSONStore) GetSettings(_ context.Context) (record.Settings, error) {
	doc, err := s.load()
	if err != nil {
		return record.Settings{}, err
	}
	return *doc.Settings, nil
}

func (s *JSONStore) GetContacts(_ context.Context) (record.Dates, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	dates, err := record.ParseDates(doc.Contacts)
	if err != nil {
		return nil, fmt.Errorf("%w: contacts: %w", record.ErrStorageUnavailable, err)
	}
	return dates, nil
}

func (s *JSONStore) GetAnniversaries(_ context.Context) (record.Dates, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	dates, err := record.ParseDates(doc.Anniversaries)
	if err != nil {
		return nil, fmt.Errorf("%w: anniversaries: %w", record.ErrStorageUnavailable, err)
	}
	return dates, nil
}

// Init writes a fresh document with default settings and creates the photos directory.
func (s *JSONStore) Init(_ context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%w: %s", record.ErrAlreadyExists, s.path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if s.photosDir != "" {
		if err := os.MkdirAll(s.photosDir, 0o755); err != nil {
			return fmt.Errorf("creating photos directory: %w", err)
		}
	}

	settings := record.DefaultSettings()
	return s.save(&document{
		Settings:      &settings,
		Contacts:      map[string]string{},
		Anniversaries: map[string]string{},
	})
}

func (s *JSONStore) SaveSettings(_ context.Context, settings record.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.update(func(doc *document) error {
		doc.Settings = &settings
		return nil
	})
}

func (s *JSONStore) AddContact(_ context.Context, name string, dateOfBirth string) error {
	if _, err := record.ParseDate(dateOfBirth); err != nil {
		return err
	}
	return s.update(func(doc *document) error {
		doc.Contacts[name] = dateOfBirth
		return nil
	})
}

func (s *JSONStore) RemoveContact(_ context.Context, name string) error {
	return s.update(func(doc *document) error {
		if _, ok := doc.Contacts[name]; !ok {
			return fmt.Errorf("%w: contact %q", record.ErrNotFound, name)
		}
		delete(doc.Contacts, name)
		return nil
	})
}

func (s *JSONStore) AddAnniversary(_ context.Context, subject string, date string) error {
	if _, err := record.ParseDate(date); err != nil {
		return err
	}
	return s.update(func(doc *document) error {
		doc.Anniversaries[subject] = date
		return nil
	})
}

func (s *JSONStore) RemoveAnniversary(_ context.Context, subject string) error {
	return s.update(func(doc *document) error {
		if _, ok := doc.Anniversaries[subject]; !ok {
			return fmt.Errorf("%w: anniversary %q", record.ErrNotFound, subject)
		}
		delete(doc.Anniversaries, subject)
		return nil
	})
}
