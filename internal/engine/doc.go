// Package engine talks to the external formatting engine.
//
// The engine is an opaque text-in/text-out service: it receives a buffer
// (or selection), a parser hint, a plugin set for embedded languages, and
// per-invocation options, and returns the formatted text plus, when a
// cursor offset was supplied, the offset's new location in the formatted
// text.
//
// Client runs the engine as a child process and speaks a JSON-RPC style
// protocol over its stdio with Content-Length framed messages. The Engine
// interface is what the rest of the system depends on; tests substitute
// fakes.
package engine
