package config

// Config holds all user-tunable prism settings. Values come from the
// defaults, layered with the user and project config files, then CLI flags.
type Config struct {
	// ColorMode selects the terminal background assumption: "auto", "dark"
	// or "light".
	ColorMode string `yaml:"colorMode,omitempty"`

	// Theme is the chroma style used for syntax highlighting. Empty means
	// pick a default matching ColorMode.
	Theme string `yaml:"theme,omitempty"`

	// Editor overrides $VISUAL/$EDITOR for the editor hand-off.
	Editor string `yaml:"editor,omitempty"`

	// LineNumbers toggles the line-number gutter in the viewer.
	LineNumbers *bool `yaml:"lineNumbers,omitempty"`

	// ScrollOffset is the fraction of the viewer height at which the
	// focused line is positioned after a jump. 0 < ScrollOffset < 1.
	ScrollOffset float64 `yaml:"scrollOffset,omitempty"`

	// ListWidth is the fraction of the terminal width given to the file
	// list pane. 0 < ListWidth < 1.
	ListWidth float64 `yaml:"listWidth,omitempty"`
}

// ShowLineNumbers resolves the LineNumbers tri-state.
func (c Config) ShowLineNumbers() bool {
	if c.LineNumbers == nil {
		return true
	}
	return *c.LineNumbers
}

// ResolvedTheme returns the chroma style name to use, falling back to the
// ColorMode default when Theme is unset.
func (c Config) ResolvedTheme() string {
	if c.Theme != "" {
		return c.Theme
	}
	if c.ColorMode == "light" {
		return defaultLightTheme
	}
	return defaultDarkTheme
}
