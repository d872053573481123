package editor

// DefaultTabWidth is used when Config.TabWidth is not positive.
const DefaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	WrapMode     WrapMode
	TabWidth     int
	Style        Style

	// Forwarded to buffer.Options.
	HistoryLimit int

	KeyMap    KeyMap
	Clipboard Clipboard

	// ReadOnly keeps navigation and copy working but ignores edits.
	ReadOnly bool
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return c.TabWidth
}
