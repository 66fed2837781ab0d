package session

import (
	"context"
	"errors"
)

// ErrCorruptSession marks stored state that failed to parse. It never leaves
// the store: implementations log it and report the slot as empty.
var ErrCorruptSession = errors.New("corrupt session data")

// Store is the persisted slot state shared by the client. Get must never
// fail because of corrupted or foreign content; such content reads as
// absent. Set overwrites whatever was there. Clear empties the session slot
// (explicit logout).
//
// The account slot holds the record returned by account creation; it is
// separate from the session slot and has no effect on routing.
type Store interface {
	Get(ctx context.Context) (*Session, error)
	Set(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error

	SetAccount(ctx context.Context, r *AccountRecord) error
	GetAccount(ctx context.Context) (*AccountRecord, error)
}
