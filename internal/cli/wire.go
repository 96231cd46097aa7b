package cli

import (
	"fmt"

	"birthday_reminder/internal/app"
	"birthday_reminder/internal/domain/notification"
	"birthday_reminder/internal/domain/record"
	"birthday_reminder/internal/infra/config"
	idb "birthday_reminder/internal/infra/database"
	"birthday_reminder/internal/infra/desktop"
	"birthday_reminder/internal/infra/dryrun"
	"birthday_reminder/internal/infra/logger"
	"birthday_reminder/internal/infra/storage"
	"birthday_reminder/internal/infra/telegram"
)

// runtime bundles what every command needs. close must be called when done.
type runtime struct {
	cfg   *config.AppConfig
	store record.Store
	close func()
}

func setup() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	logger.Init(cfg)

	rt := &runtime{cfg: cfg, close: func() {}}
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", record.ErrStorageUnavailable, err)
		}
		rt.store = idb.NewPostgresRecordStore(db)
		rt.close = func() { db.Close() }
	default:
		rt.store = storage.NewJSONStore(cfg.DataFile, cfg.PhotosDir)
	}
	logger.Component("cli").WithField("backend", cfg.StoreBackend).Debug("Record store ready.")
	return rt, nil
}

func (rt *runtime) sender() (notification.Sender, error) {
	switch rt.cfg.Notifier {
	case config.NotifierTelegram:
		return telegram.NewNotifier(rt.cfg.TelegramToken, rt.cfg.TelegramChatID)
	case config.NotifierLog:
		return dryrun.NewNotifier(logger.Component("dryrun")), nil
	default:
		return desktop.NewNotifier(rt.cfg.AppName), nil
	}
}

func (rt *runtime) reminderService() (*app.ReminderServiceImpl, error) {
	sender, err := rt.sender()
	if err != nil {
		return nil, err
	}
	photos := storage.NewPhotoDir(rt.cfg.PhotosDir, rt.cfg.PhotoExt)
	return app.NewReminderServiceImpl(rt.store, sender, photos, rt.cfg.AppName, logger.Component("reminders")), nil
}

func (rt *runtime) recordService() *app.RecordService {
	return app.NewRecordService(rt.store)
}
