package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/chatline/internal/filex"
	"github.com/dmitrijs2005/chatline/internal/logging"
)

// document is the on-disk layout: one JSON object with two named slots.
type document struct {
	Session *Session       `json:"session,omitempty"`
	Account *AccountRecord `json:"account,omitempty"`
}

// FileStore persists the slots as a single JSON file. Reads tolerate a
// missing or unparseable file and report empty slots instead of failing;
// the corruption is logged once per read.
type FileStore struct {
	mu       sync.Mutex
	fileName string
	log      logging.Logger
}

// NewFileStore builds a FileStore at fileName, creating the parent
// directory if needed.
func NewFileStore(fileName string, log logging.Logger) (*FileStore, error) {
	if _, err := filex.EnsureParentDir(fileName); err != nil {
		return nil, fmt.Errorf("session store init: %w", err)
	}
	return &FileStore{fileName: fileName, log: log}, nil
}

// load reads the whole document. A missing file is an empty document; any
// other read or parse problem is logged and also treated as empty, per the
// corrupt-session policy.
func (f *FileStore) load(ctx context.Context) *document {
	data, err := os.ReadFile(f.fileName)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.log.Warn(ctx, "session file unreadable, treating as empty", "file", f.fileName, "error", err)
		}
		return &document{}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		f.log.Warn(ctx, "session file corrupt, treating as empty",
			"file", f.fileName, "error", fmt.Errorf("%w: %v", ErrCorruptSession, err))
		return &document{}
	}
	return &doc
}

func (f *FileStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return fmt.Errorf("marshal session file: %w", err)
	}
	if err := os.WriteFile(f.fileName, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Get returns the persisted session, or nil when the slot is empty,
// missing, or unreadable. It never returns an error for bad content.
func (f *FileStore) Get(ctx context.Context) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load(ctx).Session, nil
}

// Set overwrites the session slot.
func (f *FileStore) Set(ctx context.Context, s *Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.load(ctx)
	doc.Session = s
	return f.save(doc)
}

// Clear empties the session slot, leaving the account slot untouched.
func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.load(ctx)
	doc.Session = nil
	return f.save(doc)
}

// SetAccount overwrites the account slot.
func (f *FileStore) SetAccount(ctx context.Context, r *AccountRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.load(ctx)
	doc.Account = r
	return f.save(doc)
}

// GetAccount returns the persisted account record, or nil when absent.
func (f *FileStore) GetAccount(ctx context.Context) (*AccountRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load(ctx).Account, nil
}
