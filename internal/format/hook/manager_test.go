package hook

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

func TestManagerPriorityOrder(t *testing.T) {
	m := NewManager()

	var order []string
	record := func(name string) func(context.Context) error {
		return func(context.Context) error {
			order = append(order, name)
			return nil
		}
	}

	m.Register(NewPreSaveFunc("low", 10, record("low")))
	m.Register(NewPreSaveFunc("high", 1000, record("high")))
	m.Register(NewPreSaveFunc("mid", 500, record("mid")))

	save := m.Wrap(func(context.Context) error {
		order = append(order, "save")
		return nil
	})
	if err := save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	want := []string{"high", "mid", "low", "save"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestWrapAlwaysRunsOriginalSave(t *testing.T) {
	var hookErrs []error
	m := NewManager(WithErrorHandler(func(err error) {
		hookErrs = append(hookErrs, err)
	}))

	m.Register(NewPreSaveFunc("broken", 0, func(context.Context) error {
		return errors.New("hook failed")
	}))

	saves := 0
	save := m.Wrap(func(context.Context) error {
		saves++
		return nil
	})

	if err := save(context.Background()); err != nil {
		t.Fatalf("save must not fail because a hook failed, got %v", err)
	}
	if saves != 1 {
		t.Errorf("save ran %d times, want exactly 1", saves)
	}
	if len(hookErrs) != 1 {
		t.Errorf("got %d hook errors, want 1", len(hookErrs))
	}
}

func TestRegisterReplacesByName(t *testing.T) {
	m := NewManager()

	calls := 0
	m.Register(NewPreSaveFunc("dup", 0, func(context.Context) error {
		t.Error("replaced hook should not run")
		return nil
	}))
	m.Register(NewPreSaveFunc("dup", 0, func(context.Context) error {
		calls++
		return nil
	}))

	save := m.Wrap(func(context.Context) error { return nil })
	if err := save(context.Background()); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("replacement hook ran %d times, want 1", calls)
	}

	if !m.Unregister("dup") {
		t.Error("Unregister should report removal")
	}
	if m.Unregister("dup") {
		t.Error("second Unregister should report nothing to remove")
	}
}

// formatEngine upper-cases headings so the save tests can observe the
// buffer changing.
type formatEngine struct {
	calls int
	fail  error
}

func (e *formatEngine) Format(_ context.Context, req engine.Request) (engine.Response, error) {
	e.calls++
	if e.fail != nil {
		return engine.Response{}, e.fail
	}
	off := 0
	if req.CursorOffset != nil {
		off = *req.CursorOffset
	}
	return engine.Response{Formatted: "# Title\n\ntext\n", CursorOffset: &off}, nil
}

func saveStore(t *testing.T, formatOnSave bool) *config.Store {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), "settings.toml"))
	if formatOnSave {
		if err := store.Update(func(s *config.Settings) { s.FormatOnSave = true }); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func TestFormatOnSaveFormatsThenSaves(t *testing.T) {
	eng := &formatEngine{}
	store := saveStore(t, true)
	f := format.New(eng, store)

	view := editor.NewTextView("#Title\ntext")

	m := NewManager()
	m.Register(FormatOnSave(f, store, func() editor.Editor { return view }))

	saves := 0
	save := m.Wrap(func(context.Context) error {
		saves++
		return nil
	})

	if err := save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if view.Text() != "# Title\n\ntext\n" {
		t.Errorf("buffer = %q, want formatted before save", view.Text())
	}
	if saves != 1 {
		t.Errorf("save ran %d times, want exactly 1", saves)
	}
}

func TestFormatOnSaveDisabled(t *testing.T) {
	eng := &formatEngine{}
	store := saveStore(t, false)
	f := format.New(eng, store)

	view := editor.NewTextView("#Title\ntext")

	m := NewManager()
	m.Register(FormatOnSave(f, store, func() editor.Editor { return view }))

	saves := 0
	save := m.Wrap(func(context.Context) error {
		saves++
		return nil
	})

	if err := save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if eng.calls != 0 {
		t.Error("engine must not run with format_on_save off")
	}
	if view.Text() != "#Title\ntext" {
		t.Errorf("buffer = %q, want untouched", view.Text())
	}
	if saves != 1 {
		t.Errorf("save ran %d times, want exactly 1", saves)
	}
}

func TestFormatOnSaveEngineFailureStillSaves(t *testing.T) {
	eng := &formatEngine{fail: errors.New("rejected")}
	store := saveStore(t, true)
	f := format.New(eng, store)

	view := editor.NewTextView("#Title")

	var hookErrs []error
	m := NewManager(WithErrorHandler(func(err error) {
		hookErrs = append(hookErrs, err)
	}))
	m.Register(FormatOnSave(f, store, func() editor.Editor { return view }))

	saves := 0
	save := m.Wrap(func(context.Context) error {
		saves++
		return nil
	})

	if err := save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if saves != 1 {
		t.Errorf("save ran %d times, want exactly 1 despite the rejection", saves)
	}
	if len(hookErrs) != 1 {
		t.Errorf("got %d hook errors, want the rejection reported", len(hookErrs))
	}
	if view.Text() != "#Title" {
		t.Errorf("buffer = %q, want untouched on rejection", view.Text())
	}
}

func TestFormatOnSaveNoFocusedDocument(t *testing.T) {
	eng := &formatEngine{}
	store := saveStore(t, true)
	f := format.New(eng, store)

	m := NewManager()
	m.Register(FormatOnSave(f, store, func() editor.Editor { return nil }))

	saves := 0
	save := m.Wrap(func(context.Context) error {
		saves++
		return nil
	})

	if err := save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if eng.calls != 0 {
		t.Error("engine must not run without a focused document")
	}
	if saves != 1 {
		t.Errorf("save ran %d times, want exactly 1", saves)
	}
}
