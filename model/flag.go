package model

// Flags represents the command line flags.
type Flags struct {
	MinMajor   int
	AllLines   bool
	Output     string
	ConfigPath string
	Store      bool
	DBPath     string
	Debug      bool
	Version    bool

	// Changed records the flags that were given explicitly on the command
	// line, keyed by long flag name.
	Changed map[string]bool
}

// IsSet reports whether the named flag was passed explicitly.
func (f Flags) IsSet(name string) bool {
	return f.Changed[name]
}

// Settings is the effective configuration after flags, environment and the
// config file have been merged.
type Settings struct {
	MinMajor int
	AllLines bool
	Output   string
	Store    bool
	DBPath   string
	Debug    bool
}
