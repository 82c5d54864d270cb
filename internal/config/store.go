package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Change describes a settings update delivered to observers.
type Change struct {
	// Old is the record before the update.
	Old Settings

	// New is the record after the update.
	New Settings

	// Source identifies where the change came from ("update", "reload").
	Source string
}

// Observer is called after the store's settings change.
type Observer func(Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id    uint64
	store *Store
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.store != nil {
		s.store.unsubscribe(s.id)
	}
}

// Store holds the current settings and persists them as TOML.
// All methods are thread-safe.
type Store struct {
	mu        sync.RWMutex
	path      string
	settings  Settings
	observers map[uint64]Observer
	nextID    uint64
}

// NewStore creates a store backed by the TOML file at path.
// The store starts with defaults; call Load to read the file.
func NewStore(path string) *Store {
	return &Store{
		path:      path,
		settings:  DefaultSettings(),
		observers: make(map[uint64]Observer),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Settings returns a snapshot of the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Load reads the backing file, merging it over defaults so absent keys
// keep their default values. A missing file is not an error.
func (s *Store) Load() error {
	if s.path == "" {
		return ErrNoPath
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading settings %s: %w", s.path, err)
	}

	// Unmarshal into a default-filled record: keys absent from the file
	// leave the defaults in place.
	loaded := DefaultSettings()
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing settings %s: %w", s.path, err)
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("settings %s: %w", s.path, err)
	}

	s.mu.Lock()
	old := s.settings
	s.settings = loaded
	s.mu.Unlock()

	if old != loaded {
		s.notify(Change{Old: old, New: loaded, Source: "reload"})
	}
	return nil
}

// Save writes the current settings to the backing file, creating parent
// directories as needed.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoPath
	}

	s.mu.RLock()
	current := s.settings
	s.mu.RUnlock()

	data, err := toml.Marshal(current)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings %s: %w", s.path, err)
	}
	return nil
}

// Update applies fn to a copy of the settings, validates the result,
// persists it, and notifies observers. The settings are unchanged if
// validation or persistence fails.
func (s *Store) Update(fn func(*Settings)) error {
	s.mu.Lock()
	old := s.settings
	updated := old
	fn(&updated)

	if err := updated.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}

	s.settings = updated
	s.mu.Unlock()

	if err := s.Save(); err != nil {
		s.mu.Lock()
		s.settings = old
		s.mu.Unlock()
		return err
	}

	if old != updated {
		s.notify(Change{Old: old, New: updated, Source: "update"})
	}
	return nil
}

// Subscribe registers an observer for settings changes.
func (s *Store) Subscribe(fn Observer) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers[id] = fn

	return &Subscription{id: id, store: s}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, id)
}

// notify delivers a change to all observers synchronously.
func (s *Store) notify(change Change) {
	s.mu.RLock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(change)
	}
}
