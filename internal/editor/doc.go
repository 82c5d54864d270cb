// Package editor defines the host editor boundary for formatting
// operations.
//
// The Editor interface is the contract a host must satisfy: text and
// selection access, cursor and scroll state, and the live indentation
// configuration. TextView is an in-memory implementation used by the CLI
// batch path and by tests; a real host wraps its own document view
// instead.
package editor
