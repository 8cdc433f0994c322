package session

import (
	"pronotes/internal/domain/account"
	"pronotes/internal/domain/note"
)

type State int

const (
	StateLoggedOut State = iota
	StateLoggedIn
)

func (s State) String() string {
	if s == StateLoggedIn {
		return "logged in"
	}
	return "logged out"
}

// Session is the explicit session value: current state, the active account
// and the projection of its notes. There is exactly one session per
// Manager and it never survives a process restart.
type Session struct {
	State  State
	Active *account.Account
	Notes  []note.Note
}
