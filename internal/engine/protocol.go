package engine

import "context"

// Parser identifies the top-level grammar the engine parses the text with.
type Parser string

// ParserMarkdown is the document-language hint for the top-level
// structure of every format request this system issues.
const ParserMarkdown Parser = "markdown"

// Plugin names a sub-formatter the engine may apply to embedded code
// fences.
type Plugin string

// Sub-formatters for embedded languages.
const (
	PluginScript Plugin = "script"
	PluginStyle  Plugin = "style"
	PluginData   Plugin = "data"
	PluginMarkup Plugin = "markup"
	PluginQuery  Plugin = "query"
	PluginTable  Plugin = "table"
)

// EmbeddedPlugins is the full plugin set enabled when embedded-language
// formatting is on.
func EmbeddedPlugins() []Plugin {
	return []Plugin{
		PluginScript,
		PluginStyle,
		PluginData,
		PluginMarkup,
		PluginQuery,
		PluginTable,
	}
}

// Request is a single format invocation.
type Request struct {
	// Text is the content to format.
	Text string `json:"text"`

	// Parser is the top-level language hint.
	Parser Parser `json:"parser"`

	// Plugins lists the sub-formatters available for embedded languages.
	Plugins []Plugin `json:"plugins,omitempty"`

	// PrintWidth is the target line width.
	PrintWidth int `json:"printWidth"`

	// ProseWrap is "always", "never", or "preserve".
	ProseWrap string `json:"proseWrap"`

	// EmbeddedLanguageFormatting is "auto" or "off".
	EmbeddedLanguageFormatting string `json:"embeddedLanguageFormatting"`

	// TabWidth is the number of columns per indentation level.
	TabWidth int `json:"tabWidth"`

	// UseTabs selects tab characters over spaces for indentation.
	UseTabs bool `json:"useTabs"`

	// CursorOffset, when non-nil, asks the engine to report where this
	// offset lands in the formatted text.
	CursorOffset *int `json:"cursorOffset,omitempty"`
}

// Response is the engine's answer to a Request.
type Response struct {
	// Formatted is the formatted text.
	Formatted string `json:"formatted"`

	// CursorOffset is the tracked offset's position in Formatted.
	// Nil when the request carried no cursor offset.
	CursorOffset *int `json:"cursorOffset,omitempty"`
}

// Engine is the formatting service consumed by the orchestrator.
//
// Format blocks until the engine produces a result or rejects the input;
// there are no partial results and no streaming. A rejection surfaces as
// an error with the response discarded.
type Engine interface {
	Format(ctx context.Context, req Request) (Response, error)
}
