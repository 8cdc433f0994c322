package session

import "errors"

var ErrNotLoggedIn = errors.New("no active session")
