package record

import "context"

// Reader is the read side used by the reminder engine. Every call loads fresh state.
type Reader interface {
	GetSettings(ctx context.Context) (Settings, error)
	GetContacts(ctx context.Context) (Dates, error)
	GetAnniversaries(ctx context.Context) (Dates, error)
}

// Writer is used by the editing commands.
type Writer interface {
	Init(ctx context.Context) error
	SaveSettings(ctx context.Context, settings Settings) error
	AddContact(ctx context.Context, name string, dateOfBirth string) error
	RemoveContact(ctx context.Context, name string) error
	AddAnniversary(ctx context.Context, subject string, date string) error
	RemoveAnniversary(ctx context.Context, subject string) error
}

type Store interface {
	Reader
	Writer
}
