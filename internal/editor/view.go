package editor

import (
	"strings"
	"sync"

	"github.com/tidymark/tidymark/internal/textpos"
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// TextView is an in-memory Editor implementation.
// All methods are thread-safe.
//
// Content replacement resets the scroll position, matching the host
// behavior that makes scroll capture-and-restore necessary in the first
// place.
type TextView struct {
	mu         sync.RWMutex
	text       string
	cursor     textpos.Point
	scroll     int
	selStart   textpos.Offset
	selEnd     textpos.Offset
	indent     IndentState
	lineEnding LineEnding
}

// Option configures a TextView.
type Option func(*TextView)

// WithIndent sets the view's indentation configuration.
func WithIndent(indent IndentState) Option {
	return func(v *TextView) {
		v.indent = indent
	}
}

// WithLineEnding sets the view's line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(v *TextView) {
		v.lineEnding = le
	}
}

// NewTextView creates a view with initial content.
func NewTextView(text string, opts ...Option) *TextView {
	v := &TextView{
		indent:     IndentState{TabWidth: 4, UseTabs: false},
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(v)
	}

	v.text = v.normalizeLineEndings(text)
	return v
}

// normalizeLineEndings converts all line endings to the view's preferred style.
func (v *TextView) normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if v.lineEnding == LineEndingCRLF {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	return s
}

// Text returns the full buffer content.
func (v *TextView) Text() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text
}

// SetText replaces the entire buffer content.
// The selection collapses and the scroll position resets.
func (v *TextView) SetText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.text = v.normalizeLineEndings(text)
	v.selStart = 0
	v.selEnd = 0
	v.scroll = 0
}

// Select sets the selection to the byte range [start, end).
// The range is clamped to the buffer.
func (v *TextView) Select(start, end textpos.Offset) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if start < 0 {
		start = 0
	}
	if end > len(v.text) {
		end = len(v.text)
	}
	if start > end {
		start = end
	}

	v.selStart = start
	v.selEnd = end
}

// Selection returns the currently selected text.
func (v *TextView) Selection() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text[v.selStart:v.selEnd]
}

// SelectionRange returns the selection's byte range.
func (v *TextView) SelectionRange() (start, end textpos.Offset) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selStart, v.selEnd
}

// ReplaceSelection replaces the current selection with text.
// The replacement stays selected.
func (v *TextView) ReplaceSelection(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	text = v.normalizeLineEndings(text)
	v.text = v.text[:v.selStart] + text + v.text[v.selEnd:]
	v.selEnd = v.selStart + len(text)
}

// Cursor returns the current cursor position.
func (v *TextView) Cursor() textpos.Point {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cursor
}

// SetCursor moves the cursor.
func (v *TextView) SetCursor(p textpos.Point) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursor = p
}

// ScrollOffset returns the vertical scroll position.
func (v *TextView) ScrollOffset() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.scroll
}

// SetScrollOffset sets the vertical scroll position.
func (v *TextView) SetScrollOffset(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if n < 0 {
		n = 0
	}
	v.scroll = n
}

// HasDocumentView reports whether a document view is focused.
// A TextView is always its own focused document.
func (v *TextView) HasDocumentView() bool {
	return true
}

// Indent returns the view's indentation configuration.
func (v *TextView) Indent() IndentState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.indent
}

// SetIndent updates the view's indentation configuration.
func (v *TextView) SetIndent(indent IndentState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.indent = indent
}
