package flag

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/thirukguru/version-gate/model"
	"github.com/thirukguru/version-gate/service/versioncheck"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	minMajor := pflag.IntP("min-major", "m", versioncheck.DefaultMinMajor, "Minimum accepted major version")
	allLines := pflag.BoolP("all-lines", "a", false, "Check every non-blank input line instead of only the first")
	output := pflag.StringP("output", "o", "quiet", "Output format (quiet, table, or json)")
	configPath := pflag.StringP("config-path", "c", "", "Path to a YAML config file")
	store := pflag.Bool("store", false, "Record the result in the local SQLite history")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.version-gate/history.db)")
	debug := pflag.Bool("debug", false, "Enable debug logging on stderr")
	version := pflag.BoolP("version", "v", false, "Show version information")

	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return model.Flags{}, err
	}
	if pflag.NArg() > 0 {
		return model.Flags{}, fmt.Errorf("unexpected argument %q: input is read from stdin", pflag.Arg(0))
	}

	changed := make(map[string]bool)
	pflag.Visit(func(f *pflag.Flag) {
		changed[f.Name] = true
	})

	flags := model.Flags{
		MinMajor:   *minMajor,
		AllLines:   *allLines,
		Output:     *output,
		ConfigPath: *configPath,
		Store:      *store,
		DBPath:     *dbPath,
		Debug:      *debug,
		Version:    *version,
		Changed:    changed,
	}

	return flags, nil
}
