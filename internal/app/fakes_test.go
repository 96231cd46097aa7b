package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"birthday_reminder/internal/domain/notification"
	"birthday_reminder/internal/domain/record"
)

type fakeReader struct {
	settings      record.Settings
	contacts      map[string]string
	anniversaries map[string]string
	err           error
}

func (f *fakeReader) GetSettings(context.Context) (record.Settings, error) {
	if f.err != nil {
		return record.Settings{}, f.err
	}
	return f.settings, nil
}

func (f *fakeReader) GetContacts(context.Context) (record.Dates, error) {
	if f.err != nil {
		return nil, f.err
	}
	return record.ParseDates(f.contacts)
}

func (f *fakeReader) GetAnniversaries(context.Context) (record.Dates, error) {
	if f.err != nil {
		return nil, f.err
	}
	return record.ParseDates(f.anniversaries)
}

type fakeSender struct {
	mu       sync.Mutex
	sent     []notification.Payload
	attempts []string
	failOn   map[string]error // keyed by title
	panicOn  string
}

func (f *fakeSender) Send(_ context.Context, p notification.Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, p.Title)
	if p.Title == f.panicOn {
		panic("boom")
	}
	if err, ok := f.failOn[p.Title]; ok {
		return err
	}
	f.sent = append(f.sent, p)
	return nil
}

type fakePhotos map[string]string

func (f fakePhotos) PhotoPath(name string) (string, bool) {
	p, ok := f[name]
	return p, ok
}

var errSendFailed = errors.New("dbus not available")

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustDates(raw map[string]string) record.Dates {
	d, err := record.ParseDates(raw)
	if err != nil {
		panic(err)
	}
	return d
}
