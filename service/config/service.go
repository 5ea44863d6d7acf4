// Package config merges command-line flags, environment variables and an
// optional YAML file into the settings of a run.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/thirukguru/version-gate/model"
	"gopkg.in/yaml.v3"
)

const (
	EnvMinMajor = "VERSION_GATE_MIN_MAJOR"
	EnvOutput   = "VERSION_GATE_OUTPUT"
	EnvDBPath   = "VERSION_GATE_DB_PATH"
)

var validOutputs = []string{"quiet", "table", "json"}

// NewService creates a config service. A nil getenv falls back to os.Getenv.
func NewService(getenv func(string) string) Service {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &service{getenv: getenv, readFile: os.ReadFile}
}

// LoadFile reads a YAML config. An empty path yields an empty File.
func (s *service) LoadFile(path string) (File, error) {
	var f File
	if strings.TrimSpace(path) == "" {
		return f, nil
	}
	b, err := s.readFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return f, nil
}

// Resolve applies flag > environment > config file > default precedence.
func (s *service) Resolve(flags model.Flags) (model.Settings, error) {
	file, err := s.LoadFile(flags.ConfigPath)
	if err != nil {
		return model.Settings{}, err
	}

	settings := model.Settings{
		MinMajor: flags.MinMajor,
		AllLines: flags.AllLines,
		Output:   flags.Output,
		Store:    flags.Store,
		DBPath:   flags.DBPath,
		Debug:    flags.Debug,
	}

	if !flags.IsSet("min-major") {
		if file.MinMajor != nil {
			settings.MinMajor = *file.MinMajor
		}
		if v, ok, err := s.envInt(EnvMinMajor); err != nil {
			return model.Settings{}, err
		} else if ok {
			settings.MinMajor = v
		}
	}
	if !flags.IsSet("all-lines") && file.AllLines != nil {
		settings.AllLines = *file.AllLines
	}
	if !flags.IsSet("store") && file.Store != nil {
		settings.Store = *file.Store
	}
	if !flags.IsSet("output") {
		settings.Output = firstNonEmpty(s.env(EnvOutput), file.Output, settings.Output)
	}
	if !flags.IsSet("db-path") {
		settings.DBPath = firstNonEmpty(s.env(EnvDBPath), file.DBPath, settings.DBPath)
	}

	settings.Output = strings.ToLower(strings.TrimSpace(settings.Output))
	if err := validate(settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func validate(settings model.Settings) error {
	if settings.MinMajor < 0 {
		return fmt.Errorf("min major must be >= 0, got %d", settings.MinMajor)
	}
	for _, o := range validOutputs {
		if settings.Output == o {
			return nil
		}
	}
	return fmt.Errorf("unsupported output %q (want one of %s)", settings.Output, strings.Join(validOutputs, ", "))
}

func (s *service) env(name string) string {
	return strings.TrimSpace(s.getenv(name))
}

func (s *service) envInt(name string) (int, bool, error) {
	v := s.env(name)
	if v == "" {
		return 0, false, nil
	}
	out, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s=%q: %w", name, v, err)
	}
	return out, true, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
