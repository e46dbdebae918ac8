package store

import "errors"

var (
	ErrCorrupt        = errors.New("store content is corrupt")
	ErrUnknownBackend = errors.New("unknown store backend")
	ErrDuplicateID    = errors.New("duplicate account id")
)
