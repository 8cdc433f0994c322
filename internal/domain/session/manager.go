package session

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"pronotes/internal/domain/account"
	"pronotes/internal/domain/note"
	"pronotes/internal/platform/biometric"
)

// Manager coordinates accounts, notes and the single active session.
// Every store operation is a read-modify-write pass over a whole
// collection, so all mutations are serialized through one mutex; two
// concurrent saves would otherwise lose an update.
type Manager struct {
	accounts account.Servicer
	notes    note.Servicer
	bio      biometric.Capability
	log      *slog.Logger

	mu      sync.Mutex
	session Session
}

func NewManager(accounts account.Servicer, notes note.Servicer, bio biometric.Capability, log *slog.Logger) *Manager {
	return &Manager{
		accounts: accounts,
		notes:    notes,
		bio:      bio,
		log:      log.With("component", "session_manager"),
		session:  Session{State: StateLoggedOut},
	}
}

// SignUp creates an account without logging it in; the caller is expected
// to prompt for login on success.
func (m *Manager) SignUp(ctx context.Context, username, password string) (account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.accounts.Create(ctx, username, password)
}

// Login authenticates by password and, on success, enters the logged-in
// state with the account's notes loaded. On failure the session is left
// untouched.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, err := m.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	return m.enter(ctx, acc)
}

// LoginBiometric authenticates via the device biometric capability. Only
// after the platform has confirmed the holder does it resolve the account
// by username alone.
func (m *Manager) LoginBiometric(ctx context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.bio.HasHardware() || !m.bio.IsEnrolled() {
		return biometric.ErrNotAvailable
	}

	if err := m.bio.Authenticate(ctx, "Unlock ProNotes"); err != nil {
		m.log.Debug("biometric check failed", "username", username, "error", err)
		return err
	}

	acc, err := m.accounts.AuthenticateBiometric(ctx, username)
	if err != nil {
		return err
	}

	return m.enter(ctx, acc)
}

// Switch moves the session to another enumerated account with no
// credential check; on an already-trusted device this is a deliberate
// shortcut. Switching to an unknown username is declined and the session
// stays as it was.
func (m *Manager) Switch(ctx context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.State != StateLoggedIn {
		return ErrNotLoggedIn
	}

	acc, err := m.accounts.AuthenticateBiometric(ctx, username)
	if err != nil {
		return err
	}

	return m.enter(ctx, acc)
}

// Logout clears the active account and the visible note list.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = Session{State: StateLoggedOut}
	m.log.Info("logged out")
}

// SaveNote saves a draft for the active account and reloads the visible
// list, keeping it consistent with persisted state.
func (m *Manager) SaveNote(ctx context.Context, draft note.Draft) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.State != StateLoggedIn {
		return note.Note{}, ErrNotLoggedIn
	}

	saved, err := m.notes.Save(ctx, m.session.Active.Username, draft)
	if err != nil {
		return note.Note{}, err
	}

	if err := m.reload(ctx); err != nil {
		return saved, err
	}

	return saved, nil
}

// DeleteNote removes a note by id and reloads the visible list. Deleting
// an unknown id is a no-op.
func (m *Manager) DeleteNote(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.State != StateLoggedIn {
		return ErrNotLoggedIn
	}

	if err := m.notes.Delete(ctx, id); err != nil {
		return err
	}

	return m.reload(ctx)
}

// Current returns a copy of the session value.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if m.session.Active != nil {
		acc := *m.session.Active
		s.Active = &acc
	}
	s.Notes = append([]note.Note(nil), m.session.Notes...)
	return s
}

// VisibleNotes returns the active account's notes as loaded at the last
// transition or mutation.
func (m *Manager) VisibleNotes() []note.Note {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]note.Note(nil), m.session.Notes...)
}

// Accounts enumerates every known account for the switcher.
func (m *Manager) Accounts(ctx context.Context) ([]account.Account, error) {
	return m.accounts.List(ctx)
}

// enter moves the session to the given account, loading its notes first.
// If the load fails the previous session is preserved.
func (m *Manager) enter(ctx context.Context, acc account.Account) error {
	notes, err := m.notes.ListFor(ctx, acc.Username)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	m.session = Session{
		State:  StateLoggedIn,
		Active: &acc,
		Notes:  notes,
	}

	m.log.Info("session active", "username", acc.Username, "notes", len(notes))

	return nil
}

// reload refreshes the visible note list from the store.
func (m *Manager) reload(ctx context.Context) error {
	notes, err := m.notes.ListFor(ctx, m.session.Active.Username)
	if err != nil {
		return fmt.Errorf("reload notes: %w", err)
	}

	m.session.Notes = notes
	return nil
}
