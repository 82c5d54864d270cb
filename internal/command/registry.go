package command

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tidymark/tidymark/internal/editor"
	"github.com/tidymark/tidymark/internal/format"
)

// Command IDs contributed by the formatter.
const (
	FormatDocumentID  = "format.document"
	FormatSelectionID = "format.selection"
)

// Errors returned by registry operations.
var (
	ErrDuplicateCommand = errors.New("command already registered")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnboundTrigger   = errors.New("trigger not bound")
)

// HandlerFunc executes a command against the host editor.
type HandlerFunc func(ctx context.Context, ed editor.Editor) error

// Command is an invocable action.
type Command struct {
	// ID uniquely identifies the command (e.g. "format.document").
	ID string

	// Title is the human-readable name shown by the host.
	Title string

	handler HandlerFunc
}

// Registry maps command IDs and user-bound triggers to handlers.
// All methods are thread-safe.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
	triggers map[string]string // trigger -> command ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		triggers: make(map[string]string),
	}
}

// Register adds a command.
func (r *Registry) Register(id, title string, fn HandlerFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, id)
	}
	r.commands[id] = &Command{ID: id, Title: title, handler: fn}
	return nil
}

// Commands returns all registered commands.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, *c)
	}
	return out
}

// Bind assigns a user-configured trigger to a command.
// Rebinding a trigger replaces its previous assignment.
func (r *Registry) Bind(trigger, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[id]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	r.triggers[trigger] = id
	return nil
}

// Unbind removes a trigger assignment.
func (r *Registry) Unbind(trigger string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.triggers, trigger)
}

// Invoke runs a command by ID.
func (r *Registry) Invoke(ctx context.Context, id string, ed editor.Editor) error {
	r.mu.RLock()
	cmd, ok := r.commands[id]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	return cmd.handler(ctx, ed)
}

// InvokeTrigger runs the command bound to a trigger.
func (r *Registry) InvokeTrigger(ctx context.Context, trigger string, ed editor.Editor) error {
	r.mu.RLock()
	id, ok := r.triggers[trigger]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnboundTrigger, trigger)
	}
	return r.Invoke(ctx, id, ed)
}

// RegisterFormatCommands adds the formatter's two commands.
// No triggers are bound by default.
func RegisterFormatCommands(r *Registry, f *format.Formatter) error {
	err := r.Register(FormatDocumentID, "Format the entire document",
		func(ctx context.Context, ed editor.Editor) error {
			return f.Format(ctx, format.ScopeDocument, ed)
		})
	if err != nil {
		return err
	}
	return r.Register(FormatSelectionID, "Format the current selection",
		func(ctx context.Context, ed editor.Editor) error {
			return f.Format(ctx, format.ScopeSelection, ed)
		})
}
