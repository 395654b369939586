// ABOUTME: Session state machine over the storage module's user operations.
// ABOUTME: Owns login, register, logout, and the current-user snapshot.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"stepup/internal/models"
	"stepup/internal/storage"
)

// State of the session. Unknown holds only until the first Load; after
// that the context is either Authenticated or Anonymous, and re-entering
// Authenticated requires passing through a logout.
type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// ErrInvalidCredentials reports a login mismatch. The message is the same
// for an unknown email and a wrong password so that failures do not reveal
// which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserExists reports a registration attempt with a taken email.
var ErrUserExists = errors.New("user already exists")

// Context is the session state owned by the application composition root
// and handed to every surface that needs to know who is logged in. There
// is no package-level instance.
type Context struct {
	store *storage.Store

	mu    sync.RWMutex
	state State
	user  *models.User
}

// New creates an auth context in StateUnknown; call Load before use.
func New(store *storage.Store) *Context {
	return &Context{store: store, state: StateUnknown}
}

// Load performs the one-time startup transition out of StateUnknown by
// reading the persisted session. Calling it again re-reads the session but
// the state machine never returns to Unknown.
func (a *Context) Load(ctx context.Context) error {
	user, err := a.store.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = user
	if user != nil {
		a.state = StateAuthenticated
	} else {
		a.state = StateAnonymous
	}
	return nil
}

// Login matches (email, password) against the roster exactly. A miss
// reports ErrInvalidCredentials; only a storage fault is anything else.
// On success the matched user becomes the session.
func (a *Context) Login(ctx context.Context, email, password string) (*models.User, error) {
	users, err := a.store.GetRegisteredUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := a.store.SaveUser(ctx, u); err != nil {
				return nil, fmt.Errorf("login: %w", err)
			}
			a.setAuthenticated(u)
			return &u, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Register adds user to the roster and logs them in. A taken email reports
// ErrUserExists and changes nothing.
func (a *Context) Register(ctx context.Context, user models.User) error {
	err := a.store.RegisterUser(ctx, user)
	if errors.Is(err, storage.ErrDuplicateUser) {
		return ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.setAuthenticated(user)
	return nil
}

// Logout clears the session and transitions to Anonymous.
func (a *Context) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.state = StateAnonymous
	return nil
}

// State returns the current session state.
func (a *Context) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Current returns the logged-in user, or nil.
func (a *Context) Current() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *Context) setAuthenticated(user models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = &user
	a.state = StateAuthenticated
}
