package hook

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Manager holds registered pre-save hooks and wraps save actions.
type Manager struct {
	mu    sync.RWMutex
	hooks []PreSaveHook

	// onError receives hook failures, if set. Hook failures never block
	// the save itself.
	onError func(error)
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithErrorHandler sets a handler for hook failures.
func WithErrorHandler(fn func(error)) ManagerOption {
	return func(m *Manager) {
		m.onError = fn
	}
}

// NewManager creates an empty hook manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds a hook, keeping hooks ordered by descending priority.
// A hook with a duplicate name replaces the existing one.
func (m *Manager) Register(h PreSaveHook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.hooks {
		if existing.Name() == h.Name() {
			m.hooks[i] = h
			m.sortLocked()
			return
		}
	}

	m.hooks = append(m.hooks, h)
	m.sortLocked()
}

// Unregister removes the hook with the given name.
func (m *Manager) Unregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, h := range m.hooks {
		if h.Name() == name {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// sortLocked orders hooks by descending priority. Must hold m.mu.
func (m *Manager) sortLocked() {
	sort.SliceStable(m.hooks, func(i, j int) bool {
		return m.hooks[i].Priority() > m.hooks[j].Priority()
	})
}

// Wrap returns a save function that runs all pre-save hooks and then
// delegates to save. The original save runs exactly once per call, even
// when every hook fails.
func (m *Manager) Wrap(save SaveFunc) SaveFunc {
	return func(ctx context.Context) error {
		m.runPreSave(ctx)
		return save(ctx)
	}
}

// runPreSave executes hooks in priority order, reporting failures.
func (m *Manager) runPreSave(ctx context.Context) {
	m.mu.RLock()
	hooks := make([]PreSaveHook, len(m.hooks))
	copy(hooks, m.hooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		if err := h.PreSave(ctx); err != nil && m.onError != nil {
			m.onError(fmt.Errorf("pre-save hook %s: %w", h.Name(), err))
		}
	}
}
