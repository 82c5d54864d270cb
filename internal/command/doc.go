// Package command exposes the formatter's invocable actions to the host.
//
// Two commands are registered: format.document and format.selection.
// Neither has a default trigger; the host binds user-configured triggers
// at runtime and routes key events through InvokeTrigger.
package command
