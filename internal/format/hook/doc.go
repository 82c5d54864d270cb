// Package hook provides pre-save hooks around the host's save action.
//
// Interception is additive: Manager.Wrap produces a save function that
// runs registered hooks and then always delegates to the original save,
// exactly once, regardless of what the hooks did or whether they failed.
// The wrapped original is an opaque capability handed in by the host; it
// is never reconstructed here.
package hook
