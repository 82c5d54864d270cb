package editor

import (
	"github.com/tidymark/tidymark/internal/textpos"
)

// IndentState is the host's indentation configuration at a moment in
// time. It is read fresh for every format operation, never cached: the
// host can change it independently of any settings save.
type IndentState struct {
	// TabWidth is the number of columns a tab occupies.
	TabWidth int

	// UseTabs indicates indentation uses tab characters instead of spaces.
	UseTabs bool
}

// Editor is the host-side document view a format operation runs against.
//
// Implementations own the buffer, cursor, selection, and scroll state;
// the formatter only borrows them for the duration of one operation.
type Editor interface {
	// Text returns the full buffer content.
	Text() string

	// SetText replaces the entire buffer content.
	SetText(text string)

	// Selection returns the currently selected text.
	Selection() string

	// ReplaceSelection replaces the current selection with text.
	ReplaceSelection(text string)

	// Cursor returns the current cursor position.
	Cursor() textpos.Point

	// SetCursor moves the cursor. Must be called against current content;
	// setting a cursor computed from stale text is undefined.
	SetCursor(p textpos.Point)

	// ScrollOffset returns the vertical scroll position.
	ScrollOffset() int

	// SetScrollOffset restores a previously captured scroll position.
	SetScrollOffset(n int)

	// HasDocumentView reports whether a document-editing view is focused.
	HasDocumentView() bool

	// Indent returns the live indentation configuration.
	Indent() IndentState
}
