// Package config manages persisted formatter settings.
//
// Settings are a flat record stored as TOML. Load merges the file over
// built-in defaults so missing keys keep their default values; Save
// writes the full record on every change. A Store notifies subscribed
// observers after each successful update or reload, and a Watcher can
// feed external file edits back into the store.
package config
