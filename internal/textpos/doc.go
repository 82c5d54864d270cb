// Package textpos converts between line/column points and absolute byte
// offsets in a text buffer.
//
// The conversions are exact inverses of each other for any offset within
// the buffer, which is what keeps a caret visually stable when the entire
// buffer is rewritten around it. ToOffset performs no bounds checking by
// contract; callers holding positions from a possibly stale view should
// pass them through Clamp first.
package textpos
