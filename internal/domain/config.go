package domain

// Config holds the launcher configuration.
// All fields are optional; the zero-value gaps are filled from defaults so
// an absent or partial config file never changes the delegation behavior.
type Config struct {
	// Delegate is the executable name looked up first (default "ziri").
	Delegate string `toml:"delegate"`

	// Runner is the package-runner used when no local delegate exists
	// (default "npx"). It is invoked with the delegate name prepended to
	// the forwarded argument vector.
	Runner string `toml:"runner"`

	// Log configures the optional trace log.
	Log LogConfig `toml:"log"`

	// Warnings collects non-fatal problems found while loading.
	Warnings []string `toml:"-"`
}

// LogConfig configures the launcher's trace log file.
// Logging is disabled entirely when File is empty, keeping the launcher's
// standard streams a pure pass-through to the delegate.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// NewDefaultConfig returns the configuration the launcher runs with when no
// config file or environment overrides are present.
func NewDefaultConfig() *Config {
	return &Config{
		Delegate: DefaultDelegate,
		Runner:   DefaultRunner,
		Log: LogConfig{
			Level: "info",
		},
	}
}
