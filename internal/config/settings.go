package config

import (
	"fmt"
)

// Prose wrap modes accepted by the prose_wrap setting.
const (
	ProseWrapAlways   = "always"
	ProseWrapNever    = "never"
	ProseWrapPreserve = "preserve"
)

// Print width bounds exposed by the settings surface. The width moves in
// steps of PrintWidthStep between PrintWidthMin and PrintWidthMax.
const (
	PrintWidthMin  = 10
	PrintWidthMax  = 200
	PrintWidthStep = 10
)

// Settings is the persisted formatter configuration.
//
// Indentation (tab width, tabs vs spaces) is deliberately absent: it is
// read live from the host editor at format time, not persisted here.
type Settings struct {
	// FormatOnSave runs document formatting before every save.
	FormatOnSave bool `toml:"format_on_save"`

	// EmbeddedLanguageFormatting formats code fences of other languages
	// found inside the document.
	EmbeddedLanguageFormatting bool `toml:"embedded_language_formatting"`

	// ProseWrap controls wrapping of free-text paragraphs
	// ("always", "never", "preserve").
	ProseWrap string `toml:"prose_wrap"`

	// PrintWidth is the target line width.
	PrintWidth int `toml:"print_width"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		FormatOnSave:               false,
		EmbeddedLanguageFormatting: false,
		ProseWrap:                  ProseWrapPreserve,
		PrintWidth:                 80,
	}
}

// Validate checks the settings against the bounds the settings surface
// enforces.
func (s Settings) Validate() error {
	switch s.ProseWrap {
	case ProseWrapAlways, ProseWrapNever, ProseWrapPreserve:
	default:
		return fmt.Errorf("%w: prose_wrap %q", ErrInvalidSetting, s.ProseWrap)
	}

	if s.PrintWidth < PrintWidthMin || s.PrintWidth > PrintWidthMax {
		return fmt.Errorf("%w: print_width %d outside [%d, %d]",
			ErrInvalidSetting, s.PrintWidth, PrintWidthMin, PrintWidthMax)
	}
	if s.PrintWidth%PrintWidthStep != 0 {
		return fmt.Errorf("%w: print_width %d not a multiple of %d",
			ErrInvalidSetting, s.PrintWidth, PrintWidthStep)
	}

	return nil
}
