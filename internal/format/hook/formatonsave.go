package hook

import (
	"context"

	"github.com/tidymark/tidymark/internal/config"
	"github.com/tidymark/tidymark/internal/editor"
	"github.com/tidymark/tidymark/internal/format"
)

// FormatOnSaveName identifies the built-in format-on-save hook.
const FormatOnSaveName = "format-on-save"

// FormatOnSavePriority places the hook in the framework range so user
// hooks observe the formatted buffer.
const FormatOnSavePriority = 500

// FormatOnSave returns the hook that formats the focused document before
// a save. The format_on_save setting is consulted on every save, so
// toggling it takes effect without re-registering; with it off, or with
// no focused document, the hook does nothing.
func FormatOnSave(f *format.Formatter, store *config.Store, active func() editor.Editor) *PreSaveFunc {
	return NewPreSaveFunc(FormatOnSaveName, FormatOnSavePriority, func(ctx context.Context) error {
		if !store.Settings().FormatOnSave {
			return nil
		}
		ed := active()
		if ed == nil || !ed.HasDocumentView() {
			return nil
		}
		return f.FormatDocument(ctx, ed)
	})
}
