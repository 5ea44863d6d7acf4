package config

import "github.com/thirukguru/version-gate/model"

// File is the on-disk YAML config. Pointer fields distinguish "unset" from
// the zero value.
type File struct {
	MinMajor *int   `yaml:"min_major"`
	AllLines *bool  `yaml:"all_lines"`
	Output   string `yaml:"output"`
	Store    *bool  `yaml:"store"`
	DBPath   string `yaml:"db_path"`
}

type service struct {
	getenv   func(string) string
	readFile func(string) ([]byte, error)
}

// Service resolves the effective settings for a run.
type Service interface {
	LoadFile(path string) (File, error)
	Resolve(flags model.Flags) (model.Settings, error)
}
