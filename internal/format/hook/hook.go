package hook

import "context"

// SaveFunc is the host's save action.
type SaveFunc func(ctx context.Context) error

// PreSaveHook runs before the host's save action.
type PreSaveHook interface {
	// Name returns a unique identifier for this hook.
	Name() string

	// Priority returns the hook priority. Higher values run first.
	Priority() int

	// PreSave is called before the save executes. An error is reported
	// through the manager's error handler but never blocks the save.
	PreSave(ctx context.Context) error
}

// PreSaveFunc wraps a function as a PreSaveHook.
type PreSaveFunc struct {
	name     string
	priority int
	fn       func(ctx context.Context) error
}

// NewPreSaveFunc creates a PreSaveFunc hook.
func NewPreSaveFunc(name string, priority int, fn func(ctx context.Context) error) *PreSaveFunc {
	return &PreSaveFunc{name: name, priority: priority, fn: fn}
}

// Name implements PreSaveHook.
func (f *PreSaveFunc) Name() string { return f.name }

// Priority implements PreSaveHook.
func (f *PreSaveFunc) Priority() int { return f.priority }

// PreSave implements PreSaveHook.
func (f *PreSaveFunc) PreSave(ctx context.Context) error {
	if f.fn == nil {
		return nil
	}
	return f.fn(ctx)
}
