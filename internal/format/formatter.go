package format

import (
	"context"

	"github.com/tidymark/tidymark/internal/config"
	"github.com/tidymark/tidymark/internal/editor"
	"github.com/tidymark/tidymark/internal/engine"
	"github.com/tidymark/tidymark/internal/textpos"
)

// Scope selects whether a format operation targets the whole document or
// only the current selection.
type Scope uint8

const (
	// ScopeDocument formats the entire buffer with cursor tracking.
	ScopeDocument Scope = iota
	// ScopeSelection formats only the selected text; the selection is
	// replaced without cursor tracking.
	ScopeSelection
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeDocument:
		return "document"
	case ScopeSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// Formatter runs format operations against host editors.
type Formatter struct {
	engine engine.Engine
	store  *config.Store
}

// New creates a Formatter using the given engine and settings store.
func New(eng engine.Engine, store *config.Store) *Formatter {
	return &Formatter{engine: eng, store: store}
}

// Format routes to document or selection formatting.
// When the host reports no focused document view the operation is
// silently skipped: the command may be invoked from a context without
// document focus, which is not an error.
func (f *Formatter) Format(ctx context.Context, scope Scope, ed editor.Editor) error {
	if ed == nil || !ed.HasDocumentView() {
		return nil
	}

	switch scope {
	case ScopeDocument:
		return f.FormatDocument(ctx, ed)
	case ScopeSelection:
		return f.FormatSelection(ctx, ed)
	default:
		return ErrUnknownScope
	}
}

// FormatDocument formats the entire buffer, keeping the caret and scroll
// position stable across the rewrite.
func (f *Formatter) FormatDocument(ctx context.Context, ed editor.Editor) error {
	text := ed.Text()

	// The host's cursor can drift out of sync with the buffer it reports;
	// clamp before converting rather than propagate a malformed offset.
	cursor := textpos.Clamp(text, ed.Cursor())
	offset := textpos.ToOffset(text, cursor)

	req := f.buildRequest(text, ed.Indent())
	req.CursorOffset = &offset

	resp, err := f.engine.Format(ctx, req)
	if err != nil {
		return err
	}

	// Identical output: leave buffer, cursor, scroll, and undo history
	// alone.
	if resp.Formatted == text {
		return nil
	}

	newOffset := offset
	if resp.CursorOffset != nil {
		newOffset = *resp.CursorOffset
	}

	// Scroll is captured before the content swap because hosts may reset
	// it on replacement; the cursor is set after, against the new content.
	scroll := ed.ScrollOffset()
	ed.SetText(resp.Formatted)
	ed.SetCursor(textpos.ToPosition(resp.Formatted, newOffset))
	ed.SetScrollOffset(scroll)

	return nil
}

// FormatSelection formats only the selected text and replaces the
// selection with the result. No cursor tracking is attempted.
func (f *Formatter) FormatSelection(ctx context.Context, ed editor.Editor) error {
	selected := ed.Selection()

	resp, err := f.engine.Format(ctx, f.buildRequest(selected, ed.Indent()))
	if err != nil {
		return err
	}

	if resp.Formatted == selected {
		return nil
	}

	ed.ReplaceSelection(resp.Formatted)
	return nil
}

// buildRequest assembles the engine request for one invocation from
// persisted settings and the host's live indentation state.
func (f *Formatter) buildRequest(text string, indent editor.IndentState) engine.Request {
	opts := OptionsFrom(f.store.Settings(), indent)

	req := engine.Request{
		Text:                       text,
		Parser:                     engine.ParserMarkdown,
		PrintWidth:                 opts.PrintWidth,
		ProseWrap:                  opts.ProseWrap.String(),
		EmbeddedLanguageFormatting: "off",
		TabWidth:                   opts.TabWidth,
		UseTabs:                    opts.UseTabs,
	}
	if opts.EmbeddedLanguages {
		req.Plugins = engine.EmbeddedPlugins()
		req.EmbeddedLanguageFormatting = "auto"
	}
	return req
}
