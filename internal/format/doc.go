// Package format orchestrates document and selection formatting.
//
// A Formatter borrows the host editor's buffer, cursor, and scroll state
// for the duration of one operation: it converts the cursor to an
// absolute offset, hands text and offset to the formatting engine, and
// applies the result with the caret translated back to its new location
// and the scroll position restored. Output identical to the input is a
// no-op, leaving buffer, cursor, scroll, and undo history untouched.
//
// Engine rejections propagate to the caller unmodified; the buffer is
// never touched on a failed invocation. Concurrent invocations are not
// serialized: each applies against whatever buffer state exists when its
// engine call returns, and the last write wins.
package format
