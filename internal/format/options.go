package format

import (
	"github.com/tidymark/tidymark/internal/config"
	"github.com/tidymark/tidymark/internal/editor"
)

// ProseWrap is the policy for wrapping free-text paragraphs to the
// print width.
type ProseWrap uint8

const (
	// WrapPreserve leaves existing line breaks alone.
	WrapPreserve ProseWrap = iota
	// WrapAlways re-wraps prose to the print width.
	WrapAlways
	// WrapNever joins wrapped prose onto single lines.
	WrapNever
)

// String returns the wire name of the mode.
func (w ProseWrap) String() string {
	switch w {
	case WrapAlways:
		return "always"
	case WrapNever:
		return "never"
	default:
		return "preserve"
	}
}

// parseProseWrap maps a persisted setting value to a mode.
// Unknown values fall back to preserve, the least destructive mode.
func parseProseWrap(s string) ProseWrap {
	switch s {
	case config.ProseWrapAlways:
		return WrapAlways
	case config.ProseWrapNever:
		return WrapNever
	default:
		return WrapPreserve
	}
}

// Options describes the engine configuration for a single invocation.
// It is assembled fresh per call and never mutated afterwards.
type Options struct {
	// PrintWidth is the target line width.
	PrintWidth int

	// ProseWrap is the paragraph wrapping policy.
	ProseWrap ProseWrap

	// EmbeddedLanguages enables formatting code fences of other languages.
	EmbeddedLanguages bool

	// TabWidth is the number of columns per indentation level.
	TabWidth int

	// UseTabs selects tab characters over spaces for indentation.
	UseTabs bool
}

// OptionsFrom merges persisted settings with the host's live indentation
// state. Indentation is read at call time because the host can change it
// without a settings save.
func OptionsFrom(settings config.Settings, indent editor.IndentState) Options {
	return Options{
		PrintWidth:        settings.PrintWidth,
		ProseWrap:         parseProseWrap(settings.ProseWrap),
		EmbeddedLanguages: settings.EmbeddedLanguageFormatting,
		TabWidth:          indent.TabWidth,
		UseTabs:           indent.UseTabs,
	}
}
