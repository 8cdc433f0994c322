package note

import "errors"

var ErrEmptyTitle = errors.New("note title must not be empty")
