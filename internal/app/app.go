package app

import (
	"golang.org/x/exp/slog"

	"pronotes/internal/config"
	"pronotes/internal/domain/account"
	"pronotes/internal/domain/note"
	"pronotes/internal/domain/session"
	"pronotes/internal/platform/biometric"
	"pronotes/internal/storage/kv"
)

// App wires the key-value store, the domain services and the session
// manager together for the command layer.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	store kv.Store

	Accounts account.Servicer
	Notes    note.Servicer
	Session  *session.Manager
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	var store kv.Store
	switch cfg.StoreBackend {
	case config.BackendMemory:
		store = kv.NewMemory()
	default:
		sqliteStore, err := kv.NewSQLite(cfg.DataPath)
		if err != nil {
			log.Warn("failed to open sqlite store, falling back to memory", "path", cfg.DataPath, "error", err)
			store = kv.NewMemory()
		} else {
			store = sqliteStore
		}
	}

	accounts := account.NewService(account.NewRepo(store), log)
	notes := note.NewService(note.NewRepo(store), log)

	var bio biometric.Capability
	switch cfg.BiometricMode {
	case config.BiometricTrusted:
		bio = biometric.Trusted()
	default:
		bio = biometric.None()
	}

	return &App{
		cfg:      cfg,
		log:      log,
		store:    store,
		Accounts: accounts,
		Notes:    notes,
		Session:  session.NewManager(accounts, notes, bio, log),
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}
