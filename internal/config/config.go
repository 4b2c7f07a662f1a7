package config

// Config holds the application configuration.
type Config struct {
	Theme        string `yaml:"theme"`
	LightPalette string `yaml:"light_palette"`
	DarkPalette  string `yaml:"dark_palette"`
	PersistTheme bool   `yaml:"persist_theme"`
	Mouse        bool   `yaml:"mouse"`
	LogFile      string `yaml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:        "light",
		LightPalette: "catppuccin-latte",
		DarkPalette:  "catppuccin-mocha",
		PersistTheme: true,
		Mouse:        false,
		LogFile:      "",
	}
}
