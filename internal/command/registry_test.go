package command

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tidymark/tidymark/internal/config"
	"github.com/tidymark/tidymark/internal/editor"
	"github.com/tidymark/tidymark/internal/engine"
	"github.com/tidymark/tidymark/internal/format"
)

func TestRegisterAndInvoke(t *testing.T) {
	r := NewRegistry()

	calls := 0
	if err := r.Register("test.cmd", "Test", func(context.Context, editor.Editor) error {
		calls++
		return nil
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := r.Invoke(context.Background(), "test.cmd", nil); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}

	err := r.Register("test.cmd", "Test again", nil)
	if !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("error = %v, want ErrDuplicateCommand", err)
	}

	err = r.Invoke(context.Background(), "missing", nil)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
}

func TestTriggers(t *testing.T) {
	r := NewRegistry()

	calls := 0
	if err := r.Register("test.cmd", "Test", func(context.Context, editor.Editor) error {
		calls++
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	if err := r.Bind("ctrl+alt+f", "missing"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("binding an unknown command: error = %v", err)
	}

	if err := r.Bind("ctrl+alt+f", "test.cmd"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := r.InvokeTrigger(context.Background(), "ctrl+alt+f", nil); err != nil {
		t.Fatalf("InvokeTrigger: %v", err)
	}
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}

	r.Unbind("ctrl+alt+f")
	err := r.InvokeTrigger(context.Background(), "ctrl+alt+f", nil)
	if !errors.Is(err, ErrUnboundTrigger) {
		t.Errorf("error = %v, want ErrUnboundTrigger", err)
	}
}

// echoEngine formats everything to a fixed string.
type echoEngine struct{}

func (echoEngine) Format(_ context.Context, req engine.Request) (engine.Response, error) {
	return engine.Response{Formatted: req.Text, CursorOffset: req.CursorOffset}, nil
}

func TestRegisterFormatCommands(t *testing.T) {
	r := NewRegistry()
	store := config.NewStore(filepath.Join(t.TempDir(), "settings.toml"))
	f := format.New(echoEngine{}, store)

	if err := RegisterFormatCommands(r, f); err != nil {
		t.Fatalf("RegisterFormatCommands: %v", err)
	}

	ids := make(map[string]bool)
	for _, c := range r.Commands() {
		ids[c.ID] = true
	}
	if !ids[FormatDocumentID] || !ids[FormatSelectionID] {
		t.Errorf("commands = %v, want both format commands", ids)
	}

	// No default triggers: both commands are reachable only by ID until
	// the user binds something.
	err := r.InvokeTrigger(context.Background(), "ctrl+shift+i", nil)
	if !errors.Is(err, ErrUnboundTrigger) {
		t.Errorf("error = %v, want ErrUnboundTrigger", err)
	}

	view := editor.NewTextView("text")
	if err := r.Invoke(context.Background(), FormatDocumentID, view); err != nil {
		t.Errorf("invoking %s: %v", FormatDocumentID, err)
	}
	if err := r.Invoke(context.Background(), FormatSelectionID, view); err != nil {
		t.Errorf("invoking %s: %v", FormatSelectionID, err)
	}
}
