package config

const (
	defaultDarkTheme  = "github-dark"
	defaultLightTheme = "github"

	defaultScrollOffset = 0.33
	defaultListWidth    = 0.30
)

// GetDefaultConfig returns the built-in configuration used when no config
// file overrides a setting.
func GetDefaultConfig() Config {
	return Config{
		ColorMode:    "auto",
		ScrollOffset: defaultScrollOffset,
		ListWidth:    defaultListWidth,
	}
}
