package screen

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minagishl/command-builder/builder"
)

// Manager owns the live builder screens. Updates replace the full options
// record and recompile; concurrent edits to the same screen resolve as
// last edit wins.
type Manager struct {
	mu      sync.RWMutex
	screens map[string]*Screen
}

func NewManager() *Manager {
	return &Manager{screens: make(map[string]*Screen)}
}

// Create mounts a new screen for builderKey with a fully-populated default
// options record and its compiled command.
func (m *Manager) Create(builderKey string) (Screen, error) {
	b, ok := builder.Lookup(builderKey)
	if !ok {
		return Screen{}, ErrUnknownBuilder
	}

	opts := b.NewOptions()
	now := time.Now()
	s := &Screen{
		ID:         uuid.NewString(),
		Builder:    builderKey,
		CreatedAt:  now,
		LastActive: now,
		Options:    opts,
		Command:    b.Compile(opts),
	}

	m.mu.Lock()
	m.screens[s.ID] = s
	m.mu.Unlock()
	return *s, nil
}

// Get returns a snapshot of the screen with the given id.
func (m *Manager) Get(id string) (Screen, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.screens[id]
	if !ok {
		return Screen{}, false
	}
	return *s, true
}

// List returns snapshots of all mounted screens.
func (m *Manager) List() []Screen {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Screen, 0, len(m.screens))
	for _, s := range m.screens {
		out = append(out, *s)
	}
	return out
}

// Discard unmounts the screen. Its state is gone for good.
func (m *Manager) Discard(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.screens[id]; !ok {
		return ErrNotFound
	}
	delete(m.screens, id)
	return nil
}

// SetOptions replaces the screen's options record with raw and recompiles.
// The record starts from the builder's defaults, so a field missing from
// raw falls back to its default rather than keeping a stale value.
func (m *Manager) SetOptions(id string, raw json.RawMessage) (Screen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.screens[id]
	if !ok {
		return Screen{}, ErrNotFound
	}
	b, _ := builder.Lookup(s.Builder)

	opts := b.NewOptions()
	if err := builder.Decode(opts, raw); err != nil {
		return Screen{}, err
	}
	s.Options = opts
	s.Command = b.Compile(opts)
	s.LastActive = time.Now()
	return *s, nil
}

// ApplyPreset overlays the preset's fields onto the current options and
// recompiles; fields the preset does not name keep their current values,
// so successive presets compose. The sentinel "none" key clears the
// active-preset indicator without touching any field.
func (m *Manager) ApplyPreset(id, key string) (Screen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.screens[id]
	if !ok {
		return Screen{}, ErrNotFound
	}
	b, _ := builder.Lookup(s.Builder)

	if key == builder.PresetNone {
		s.Preset = ""
		s.LastActive = time.Now()
		return *s, nil
	}

	p, ok := builder.FindPreset(b, key)
	if !ok {
		return Screen{}, ErrUnknownPreset
	}
	if err := builder.ApplyOverlay(s.Options, p.Overlay); err != nil {
		return Screen{}, err
	}
	s.Preset = key
	s.Command = b.Compile(s.Options)
	s.LastActive = time.Now()
	return *s, nil
}
