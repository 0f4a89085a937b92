package storage

import "github.com/go-faster/errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when Begin is called on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrCorruptRecord is returned when a stored row cannot be decoded.
	ErrCorruptRecord = errors.New("corrupt record")
)
