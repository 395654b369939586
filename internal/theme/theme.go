// ABOUTME: Theme context: persisted dark/light flag and derived palette.
// ABOUTME: Maps the app's screen colors onto terminal color attributes.
package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/fatih/color"

	"stepup/internal/storage"
)

// Persisted theme flags.
const (
	Dark  = "dark"
	Light = "light"
)

// Palette is the derived color set for the current mode.
type Palette struct {
	Primary *color.Color
	Success *color.Color
	Warning *color.Color
	Faint   *color.Color
}

// Context owns the theme preference. Like the auth context, it is built by
// the composition root and passed down explicitly; every toggle persists
// immediately.
type Context struct {
	store *storage.Store

	mu       sync.RWMutex
	darkMode bool
}

// New creates a theme context defaulting to light mode; call Load to pick
// up the persisted preference.
func New(store *storage.Store) *Context {
	return &Context{store: store}
}

// Load reads the persisted preference.
func (t *Context) Load(ctx context.Context) error {
	mode, err := t.store.GetTheme(ctx)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.darkMode = mode == Dark
	return nil
}

// IsDark reports whether dark mode is active.
func (t *Context) IsDark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.darkMode
}

// Toggle switches the mode and persists it.
func (t *Context) Toggle(ctx context.Context, dark bool) error {
	mode := Light
	if dark {
		mode = Dark
	}
	if err := t.store.SetTheme(ctx, mode); err != nil {
		return fmt.Errorf("toggle theme: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.darkMode = dark
	return nil
}

// Colors returns the palette for the current mode.
func (t *Context) Colors() Palette {
	if t.IsDark() {
		return Palette{
			Primary: color.New(color.FgHiBlue),
			Success: color.New(color.FgHiGreen),
			Warning: color.New(color.FgHiYellow),
			Faint:   color.New(color.Faint),
		}
	}
	return Palette{
		Primary: color.New(color.FgBlue),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgYellow),
		Faint:   color.New(color.Faint),
	}
}
