// ABOUTME: Storage module: JSON documents over the key-value store.
// ABOUTME: Roster, session, and theme operations plus shared document helpers.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"stepup/internal/kv"
	"stepup/internal/models"
)

// Logical document keys. The session lives under its own key so that login
// state survives restarts independent of the full roster. Login, logout,
// and GetUser all use KeySessionUser; there is deliberately one session key.
const (
	KeyRegisteredUsers = "stepup_users"
	KeySessionUser     = "stepup_user"
	KeyAppData         = "stepup_data"
	KeyCustomTypes     = "stepup_custom_types"
	KeyTheme           = "@theme_preference"
)

var (
	// ErrDuplicateUser is returned when registering an email already in
	// the roster.
	ErrDuplicateUser = errors.New("user with this email already exists")

	// ErrDuplicateType is returned when a custom workout type collides
	// with a default or an existing custom type.
	ErrDuplicateType = errors.New("workout type already exists")

	// ErrNotFound is returned when an update targets a workout id that is
	// not in the store.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateWorkout is returned when saving a workout whose
	// caller-supplied id is already in the history.
	ErrDuplicateWorkout = errors.New("workout with this id already exists")
)

// Store translates high-level operations into whole-document reads and
// writes against the key-value store. Every write is a read-modify-write of
// the full document. The mutex serializes in-process writers; there is no
// cross-process coordination, so concurrent processes can lose updates.
// Document size is bounded by a single user's history, which keeps the
// whole-document strategy cheap enough.
type Store struct {
	kv  kv.Store
	mu  sync.Mutex
	now func() time.Time
}

// New creates a Store over the given key-value store.
func New(store kv.Store) *Store {
	return &Store{kv: store, now: time.Now}
}

// NewWithClock creates a Store with a fixed clock for id generation.
func NewWithClock(store kv.Store, now func() time.Time) *Store {
	return &Store{kv: store, now: now}
}

// getJSON reads and decodes the document under key. The boolean reports
// whether the document existed; a missing key is not an error.
func (s *Store) getJSON(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// setJSON encodes and writes the document under key.
func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, data)
}

// GetRegisteredUsers returns the roster in registration order. A missing
// document reads as an empty roster.
func (s *Store) GetRegisteredUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := s.getJSON(ctx, KeyRegisteredUsers, &users); err != nil {
		return nil, fmt.Errorf("get registered users: %w", err)
	}
	return users, nil
}

// SaveUser persists user as the current session, replacing any prior one.
// Roster uniqueness is the caller's concern; RegisterUser enforces it.
func (s *Store) SaveUser(ctx context.Context, user models.User) error {
	if err := s.setJSON(ctx, KeySessionUser, user); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// GetUser returns the session user, or nil when nobody is logged in.
func (s *Store) GetUser(ctx context.Context) (*models.User, error) {
	var user models.User
	ok, err := s.getJSON(ctx, KeySessionUser, &user)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// RegisterUser appends user to the roster and establishes the session.
// Registration fails with ErrDuplicateUser when the email is already taken
// (exact match), leaving the roster untouched. The roster write and the
// session write are not atomic: a session failure after a roster write is
// surfaced as an error rather than papered over.
func (s *Store) RegisterUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if _, err := s.getJSON(ctx, KeyRegisteredUsers, &users); err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	for _, existing := range users {
		if existing.Email == user.Email {
			return ErrDuplicateUser
		}
	}

	users = append(users, user)
	if err := s.setJSON(ctx, KeyRegisteredUsers, users); err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	if err := s.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	return nil
}

// Logout removes the session key. The roster is untouched.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeySessionUser); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// GetTheme returns the persisted theme flag ("dark" or "light"),
// defaulting to light when never set.
func (s *Store) GetTheme(ctx context.Context) (string, error) {
	data, err := s.kv.Get(ctx, KeyTheme)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return "light", nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	return string(data), nil
}

// SetTheme persists the theme flag.
func (s *Store) SetTheme(ctx context.Context, mode string) error {
	if err := s.kv.Set(ctx, KeyTheme, []byte(mode)); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
